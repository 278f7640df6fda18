package inventory

import (
	"context"

	"github.com/dukadash/backend/internal/domain/inventory"
)

// TransactionScope runs a function with stock repositories bound to one
// database transaction. The ledger row and its history entry either land
// together or not at all.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories inside a transaction
type TransactionalRepositories interface {
	StockRepo() inventory.StockRepository
	HistoryRepo() inventory.StockHistoryRepository
}

// NoOpTransactionScope hands back the wired repositories without opening
// a transaction. Used in tests.
type NoOpTransactionScope struct {
	stockRepo   inventory.StockRepository
	historyRepo inventory.StockHistoryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(stockRepo inventory.StockRepository, historyRepo inventory.StockHistoryRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{stockRepo: stockRepo, historyRepo: historyRepo}
}

// Execute runs the function against the plain repositories
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
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
