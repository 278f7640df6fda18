package shop

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
)

// ShopRepository persists the Shop aggregate
type ShopRepository interface {
	shared.OwnedRepository[Shop]

	// FindActive returns the user's active shop, or NOT_FOUND
	FindActive(ctx context.Context, userID uuid.UUID) (*Shop, error)

	// Activate swaps the active shop in one transaction: every shop of the
	// user is deactivated and the given one activated. No interleaving can
	// observe two active shops.
	Activate(ctx context.Context, userID, shopID uuid.UUID) error

	// EnsureDefault idempotently provisions the user's default shop and
	// returns it. Concurrent calls converge on the same row.
	EnsureDefault(ctx context.Context, userID uuid.UUID) (*Shop, error)
}
