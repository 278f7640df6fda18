package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
)

// GormShopRepository implements shop.ShopRepository
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// FindByID finds a shop by its ID
func (r *GormShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	var s shop.Shop
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

// FindByIDForOwner finds a shop by ID scoped to its owner
func (r *GormShopRepository) FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*shop.Shop, error) {
	var s shop.Shop
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&s).Error; err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

// FindAll returns shops matching the filter
func (r *GormShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Shop, error) {
	var shops []shop.Shop
	query := applyPagination(applySort(r.db.WithContext(ctx).Model(&shop.Shop{}), filter, ShopSortFields), filter)
	if err := query.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// FindAllForOwner returns a user's shops matching the filter
func (r *GormShopRepository) FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]shop.Shop, error) {
	var shops []shop.Shop
	query := r.db.WithContext(ctx).Model(&shop.Shop{}).Where("user_id = ?", userID)
	query = applyPagination(applySort(query, filter, ShopSortFields), filter)
	if err := query.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// FindActive returns the user's active shop
func (r *GormShopRepository) FindActive(ctx context.Context, userID uuid.UUID) (*shop.Shop, error) {
	var s shop.Shop
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&s).Error; err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

// Activate swaps the active shop in one transaction
func (r *GormShopRepository) Activate(ctx context.Context, userID, shopID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&shop.Shop{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		result := tx.Model(&shop.Shop{}).
			Where("user_id = ? AND id = ?", userID, shopID).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// EnsureDefault idempotently provisions and returns the user's default
// shop. Concurrent callers race on the (user_id, name) unique index and
// converge on the same row.
func (r *GormShopRepository) EnsureDefault(ctx context.Context, userID uuid.UUID) (*shop.Shop, error) {
	if active, err := r.FindActive(ctx, userID); err == nil {
		return active, nil
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	var result *shop.Shop
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing shop.Shop
		err := tx.Where("user_id = ? AND name = ?", userID, shop.DefaultShopName).
			First(&existing).Error
		switch {
		case err == nil:
			result = &existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := shop.NewDefaultShop(userID)
			created.IsActive = false
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(created).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ? AND name = ?", userID, shop.DefaultShopName).
				First(&existing).Error; err != nil {
				return err
			}
			result = &existing
		default:
			return err
		}

		// No shop was active when we got here; make the default one active.
		if !result.IsActive {
			if err := tx.Model(&shop.Shop{}).
				Where("user_id = ? AND id = ?", userID, result.ID).
				Update("is_active", true).Error; err != nil {
				return err
			}
			result.IsActive = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Save creates or updates a shop
func (r *GormShopRepository) Save(ctx context.Context, s *shop.Shop) error {
	return translateError(r.db.WithContext(ctx).Save(s).Error)
}

// Delete deletes a shop
func (r *GormShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&shop.Shop{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts shops matching the filter
func (r *GormShopRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&shop.Shop{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForOwner counts a user's shops
func (r *GormShopRepository) CountForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&shop.Shop{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ shop.ShopRepository = (*GormShopRepository)(nil)
