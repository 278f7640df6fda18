package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
)

// ExpenseRepository persists the Expense aggregate
type ExpenseRepository interface {
	shared.OwnedRepository[Expense]

	// FindByShop returns expenses for one shop, newest first
	FindByShop(ctx context.Context, userID, shopID uuid.UUID, filter shared.Filter) ([]Expense, error)

	// FindInRange returns expenses recorded within [start, end)
	FindInRange(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID, start, end time.Time) ([]Expense, error)
}
