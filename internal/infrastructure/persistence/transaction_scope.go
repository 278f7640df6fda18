package persistence

import (
	"context"

	"gorm.io/gorm"

	appinventory "github.com/dukadash/backend/internal/application/inventory"
	appsales "github.com/dukadash/backend/internal/application/sales"
	"github.com/dukadash/backend/internal/domain/inventory"
	"github.com/dukadash/backend/internal/domain/sales"
)

// GormStockTransactionScope binds the stock and history repositories to
// one database transaction.
type GormStockTransactionScope struct {
	db *gorm.DB
}

// NewGormStockTransactionScope creates a GormStockTransactionScope
func NewGormStockTransactionScope(db *gorm.DB) *GormStockTransactionScope {
	return &GormStockTransactionScope{db: db}
}

// Execute runs fn inside a transaction; any error rolls it back
func (s *GormStockTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txStockRepositories{tx: tx})
	})
}

type txStockRepositories struct {
	tx *gorm.DB
}

func (r *txStockRepositories) StockRepo() inventory.StockRepository {
	return NewGormStockRepository(r.tx)
}

func (r *txStockRepositories) HistoryRepo() inventory.StockHistoryRepository {
	return NewGormStockHistoryRepository(r.tx)
}

// GormSaleTransactionScope binds the sale, stock and history repositories
// to one database transaction.
type GormSaleTransactionScope struct {
	db *gorm.DB
}

// NewGormSaleTransactionScope creates a GormSaleTransactionScope
func NewGormSaleTransactionScope(db *gorm.DB) *GormSaleTransactionScope {
	return &GormSaleTransactionScope{db: db}
}

// Execute runs fn inside a transaction; any error rolls it back
func (s *GormSaleTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txSaleRepositories{tx: tx})
	})
}

type txSaleRepositories struct {
	tx *gorm.DB
}

func (r *txSaleRepositories) SaleRepo() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

func (r *txSaleRepositories) StockRepo() inventory.StockRepository {
	return NewGormStockRepository(r.tx)
}

func (r *txSaleRepositories) HistoryRepo() inventory.StockHistoryRepository {
	return NewGormStockHistoryRepository(r.tx)
}

var _ appinventory.TransactionScope = (*GormStockTransactionScope)(nil)
var _ appsales.TransactionScope = (*GormSaleTransactionScope)(nil)
