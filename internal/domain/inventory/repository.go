package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
)

// StockRepository persists the Stock aggregate
type StockRepository interface {
	shared.OwnedRepository[Stock]

	// FindByShop returns the stock lines of one shop
	FindByShop(ctx context.Context, userID, shopID uuid.UUID, filter shared.Filter) ([]Stock, error)

	// FindBelowThreshold returns stocks at or under their reorder threshold,
	// including empty ones
	FindBelowThreshold(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID) ([]Stock, error)

	// SaveWithLock persists the aggregate guarded by its version column.
	// A stale version yields a CONCURRENCY_CONFLICT error.
	SaveWithLock(ctx context.Context, stock *Stock) error

	// DecrementOnSale atomically moves quantity from on-hand to sold with a
	// conditional update and returns the post-decrement on-hand quantity.
	// When on-hand is short it returns the available amount inside an
	// INSUFFICIENT_STOCK error and changes nothing.
	DecrementOnSale(ctx context.Context, stockID uuid.UUID, quantity int) (int, error)
}

// StockHistoryRepository persists the append-only audit trail
type StockHistoryRepository interface {
	Append(ctx context.Context, entry *StockHistory) error
	FindByStock(ctx context.Context, userID, stockID uuid.UUID, filter shared.Filter) ([]StockHistory, error)
	CountByStock(ctx context.Context, userID, stockID uuid.UUID) (int64, error)
}
