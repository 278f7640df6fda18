package sales

import (
	"context"

	"github.com/dukadash/backend/internal/domain/inventory"
	"github.com/dukadash/backend/internal/domain/sales"
)

// TransactionScope runs a function with the sale, stock and history
// repositories bound to one database transaction. The sale row, the
// ledger decrement and the audit entry commit or roll back together.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories inside a transaction
type TransactionalRepositories interface {
	SaleRepo() sales.SaleRepository
	StockRepo() inventory.StockRepository
	HistoryRepo() inventory.StockHistoryRepository
}

// NoOpTransactionScope hands back the wired repositories without opening
// a transaction. Used in tests.
type NoOpTransactionScope struct {
	saleRepo    sales.SaleRepository
	stockRepo   inventory.StockRepository
	historyRepo inventory.StockHistoryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(
	saleRepo sales.SaleRepository,
	stockRepo inventory.StockRepository,
	historyRepo inventory.StockHistoryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{saleRepo: saleRepo, stockRepo: stockRepo, historyRepo: historyRepo}
}

// Execute runs the function against the plain repositories
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() sales.SaleRepository {
	return s.saleRepo
}

// StockRepo returns the stock repository
func (s *NoOpTransactionScope) StockRepo() inventory.StockRepository {
	return s.stockRepo
}

// HistoryRepo returns the history repository
func (s *NoOpTransactionScope) HistoryRepo() inventory.StockHistoryRepository {
	return s.historyRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
