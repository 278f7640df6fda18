package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
)

// SaleRepository persists the Sale aggregate
type SaleRepository interface {
	shared.OwnedRepository[Sale]

	// FindByShop returns sales for one shop, newest first
	FindByShop(ctx context.Context, userID, shopID uuid.UUID, filter shared.Filter) ([]Sale, error)

	// FindInRange returns sales recorded within [start, end)
	FindInRange(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID, start, end time.Time) ([]Sale, error)
}
