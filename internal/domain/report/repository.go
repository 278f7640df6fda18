package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
)

// AggregateRepository runs the read-side aggregate queries. Results are
// recomputed per call; nothing is materialized.
type AggregateRepository interface {
	Summarize(ctx context.Context, q Query) (*Summary, error)
	DailyBreakdown(ctx context.Context, q Query) ([]DailyEntry, error)
	TopProducts(ctx context.Context, q Query, limit int) ([]TopProduct, error)
	ExpenseBreakdown(ctx context.Context, q Query) ([]ExpenseSlice, error)
	InventoryHealth(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID) (*InventoryHealth, error)
	ProductSales(ctx context.Context, userID uuid.UUID) ([]TopProduct, error)
}

// FileRepository persists report file metadata
type FileRepository interface {
	Save(ctx context.Context, file *ReportFile) error
	FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*ReportFile, error)
	FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ReportFile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
