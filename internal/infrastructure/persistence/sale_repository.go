package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukadash/backend/internal/domain/sales"
	"github.com/dukadash/backend/internal/domain/shared"
)

// GormSaleRepository implements sales.SaleRepository
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &sale, nil
}

// FindByIDForOwner finds a sale by ID scoped to its owner
func (r *GormSaleRepository) FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&sale).Error; err != nil {
		return nil, translateError(err)
	}
	return &sale, nil
}

// FindAll returns sales matching the filter
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Sale, error) {
	var result []sales.Sale
	query := r.filtered(r.db.WithContext(ctx).Model(&sales.Sale{}), filter)
	query = applyPagination(applySort(query, filter, SaleSortFields), filter)

	if err := query.Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// FindAllForOwner returns a user's sales matching the filter
func (r *GormSaleRepository) FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]sales.Sale, error) {
	var result []sales.Sale
	query := r.filtered(
		r.db.WithContext(ctx).Model(&sales.Sale{}).Where("user_id = ?", userID),
		filter,
	)
	query = applyPagination(applySort(query, filter, SaleSortFields), filter)

	if err := query.Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// FindByShop returns sales for one shop, newest first
func (r *GormSaleRepository) FindByShop(ctx context.Context, userID, shopID uuid.UUID, filter shared.Filter) ([]sales.Sale, error) {
	return r.FindAllForOwner(ctx, userID, filter.WithFilter("shop_id", shopID))
}

// FindInRange returns sales recorded within [start, end)
func (r *GormSaleRepository) FindInRange(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID, start, end time.Time) ([]sales.Sale, error) {
	query := r.db.WithContext(ctx).Model(&sales.Sale{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end)
	if shopID != nil {
		query = query.Where("shop_id = ?", *shopID)
	}

	var result []sales.Sale
	if err := query.Order("created_at DESC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Save creates or updates a sale
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return translateError(r.db.WithContext(ctx).Save(sale).Error)
}

// Delete deletes a sale
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sales.Sale{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts sales matching the filter
func (r *GormSaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.filtered(r.db.WithContext(ctx).Model(&sales.Sale{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForOwner counts a user's sales matching the filter
func (r *GormSaleRepository) CountForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.filtered(
		r.db.WithContext(ctx).Model(&sales.Sale{}).Where("user_id = ?", userID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSaleRepository) filtered(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "shop_id":
			query = query.Where("shop_id = ?", value)
		case "stock_id":
			query = query.Where("stock_id = ?", value)
		}
	}
	if filter.Search != "" {
		query = query.Where("stock_name ILIKE ?", "%"+filter.Search+"%")
	}
	return query
}

var _ sales.SaleRepository = (*GormSaleRepository)(nil)
