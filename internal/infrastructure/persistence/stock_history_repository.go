package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukadash/backend/internal/domain/inventory"
	"github.com/dukadash/backend/internal/domain/shared"
)

// GormStockHistoryRepository implements inventory.StockHistoryRepository.
// The table is append-only; rows are never updated or deleted.
type GormStockHistoryRepository struct {
	db *gorm.DB
}

// NewGormStockHistoryRepository creates a GormStockHistoryRepository
func NewGormStockHistoryRepository(db *gorm.DB) *GormStockHistoryRepository {
	return &GormStockHistoryRepository{db: db}
}

// Append writes one audit entry
func (r *GormStockHistoryRepository) Append(ctx context.Context, entry *inventory.StockHistory) error {
	return translateError(r.db.WithContext(ctx).Create(entry).Error)
}

// FindByStock returns a stock line's audit trail, newest first
func (r *GormStockHistoryRepository) FindByStock(ctx context.Context, userID, stockID uuid.UUID, filter shared.Filter) ([]inventory.StockHistory, error) {
	var entries []inventory.StockHistory
	query := r.db.WithContext(ctx).Model(&inventory.StockHistory{}).
		Where("user_id = ? AND stock_id = ?", userID, stockID)
	query = applyPagination(applySort(query, filter, HistorySortFields), filter)

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByStock counts a stock line's audit entries
func (r *GormStockHistoryRepository) CountByStock(ctx context.Context, userID, stockID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.StockHistory{}).
		Where("user_id = ? AND stock_id = ?", userID, stockID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ inventory.StockHistoryRepository = (*GormStockHistoryRepository)(nil)
