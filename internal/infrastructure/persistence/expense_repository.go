package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukadash/backend/internal/domain/finance"
	"github.com/dukadash/backend/internal/domain/shared"
)

// GormExpenseRepository implements finance.ExpenseRepository
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var expense finance.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &expense, nil
}

// FindByIDForOwner finds an expense by ID scoped to its owner
func (r *GormExpenseRepository) FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*finance.Expense, error) {
	var expense finance.Expense
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&expense).Error; err != nil {
		return nil, translateError(err)
	}
	return &expense, nil
}

// FindAll returns expenses matching the filter
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, error) {
	var result []finance.Expense
	query := r.filtered(r.db.WithContext(ctx).Model(&finance.Expense{}), filter)
	query = applyPagination(applySort(query, filter, ExpenseSortFields), filter)

	if err := query.Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// FindAllForOwner returns a user's expenses matching the filter
func (r *GormExpenseRepository) FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]finance.Expense, error) {
	var result []finance.Expense
	query := r.filtered(
		r.db.WithContext(ctx).Model(&finance.Expense{}).Where("user_id = ?", userID),
		filter,
	)
	query = applyPagination(applySort(query, filter, ExpenseSortFields), filter)

	if err := query.Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// FindByShop returns expenses for one shop, newest first
func (r *GormExpenseRepository) FindByShop(ctx context.Context, userID, shopID uuid.UUID, filter shared.Filter) ([]finance.Expense, error) {
	return r.FindAllForOwner(ctx, userID, filter.WithFilter("shop_id", shopID))
}

// FindInRange returns expenses recorded within [start, end)
func (r *GormExpenseRepository) FindInRange(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID, start, end time.Time) ([]finance.Expense, error) {
	query := r.db.WithContext(ctx).Model(&finance.Expense{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end)
	if shopID != nil {
		query = query.Where("shop_id = ?", *shopID)
	}

	var result []finance.Expense
	if err := query.Order("created_at DESC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	return translateError(r.db.WithContext(ctx).Save(expense).Error)
}

// Delete deletes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts expenses matching the filter
func (r *GormExpenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.filtered(r.db.WithContext(ctx).Model(&finance.Expense{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForOwner counts a user's expenses matching the filter
func (r *GormExpenseRepository) CountForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.filtered(
		r.db.WithContext(ctx).Model(&finance.Expense{}).Where("user_id = ?", userID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormExpenseRepository) filtered(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "shop_id":
			query = query.Where("shop_id = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		}
	}
	if filter.Search != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Search+"%")
	}
	return query
}

var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
