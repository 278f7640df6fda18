package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukadash/backend/internal/domain/inventory"
	"github.com/dukadash/backend/internal/domain/shared"
)

// GormStockRepository implements inventory.StockRepository
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// FindByID finds a stock line by its ID
func (r *GormStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	if err := r.db.WithContext(ctx).First(&stock, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

// FindByIDForOwner finds a stock line by ID scoped to its owner
func (r *GormStockRepository) FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&stock).Error; err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

// FindAll returns stock lines matching the filter
func (r *GormStockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Stock, error) {
	var stocks []inventory.Stock
	query := r.filtered(r.db.WithContext(ctx).Model(&inventory.Stock{}), filter)
	query = applyPagination(applySort(query, filter, StockSortFields), filter)

	if err := query.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindAllForOwner returns a user's stock lines matching the filter
func (r *GormStockRepository) FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]inventory.Stock, error) {
	var stocks []inventory.Stock
	query := r.filtered(
		r.db.WithContext(ctx).Model(&inventory.Stock{}).Where("user_id = ?", userID),
		filter,
	)
	query = applyPagination(applySort(query, filter, StockSortFields), filter)

	if err := query.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByShop returns the stock lines of one shop
func (r *GormStockRepository) FindByShop(ctx context.Context, userID, shopID uuid.UUID, filter shared.Filter) ([]inventory.Stock, error) {
	return r.FindAllForOwner(ctx, userID, filter.WithFilter("shop_id", shopID))
}

// FindBelowThreshold returns stocks at or under their reorder threshold
func (r *GormStockRepository) FindBelowThreshold(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID) ([]inventory.Stock, error) {
	query := r.db.WithContext(ctx).Model(&inventory.Stock{}).
		Where("user_id = ? AND quantity_in_stock <= min_stock_level", userID)
	if shopID != nil {
		query = query.Where("shop_id = ?", *shopID)
	}

	var stocks []inventory.Stock
	if err := query.Order("quantity_in_stock ASC").Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// Save creates or updates a stock line
func (r *GormStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	return translateError(r.db.WithContext(ctx).Save(stock).Error)
}

// SaveWithLock saves mutable columns guarded by the version column
func (r *GormStockRepository) SaveWithLock(ctx context.Context, stock *inventory.Stock) error {
	stock.Version++
	result := r.db.WithContext(ctx).
		Model(stock).
		Where("id = ? AND version = ?", stock.ID, stock.Version-1).
		Updates(map[string]interface{}{
			"name":              stock.Name,
			"category":          stock.Category,
			"price":             stock.Price,
			"quantity_in_stock": stock.QuantityInStock,
			"quantity_sold":     stock.QuantitySold,
			"min_stock_level":   stock.MinStockLevel,
			"version":           stock.Version,
			"updated_at":        stock.UpdatedAt,
		})

	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// DecrementOnSale moves quantity from on-hand to sold in one conditional
// update and returns the post-decrement on-hand quantity. The quantity
// guard in the WHERE clause is what makes concurrent sales of the last
// units safe; the re-read underneath runs on the same handle, so inside a
// transaction it reports the quantity this decrement actually produced.
func (r *GormStockRepository) DecrementOnSale(ctx context.Context, stockID uuid.UUID, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, shared.NewDomainError("VALIDATION_ERROR", "Quantity sold must be greater than zero")
	}

	result := r.db.WithContext(ctx).Model(&inventory.Stock{}).
		Where("id = ? AND quantity_in_stock >= ?", stockID, quantity).
		Updates(map[string]interface{}{
			"quantity_in_stock": gorm.Expr("quantity_in_stock - ?", quantity),
			"quantity_sold":     gorm.Expr("quantity_sold + ?", quantity),
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}

	var stock inventory.Stock
	err := r.db.WithContext(ctx).Select("quantity_in_stock").First(&stock, "id = ?", stockID).Error
	if result.RowsAffected > 0 {
		if err != nil {
			return 0, err
		}
		return stock.QuantityInStock, nil
	}

	// Either the row is gone or on-hand is short; report which.
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, shared.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return 0, shared.NewDomainErrorf("INSUFFICIENT_STOCK",
		"Insufficient stock: only %d available", stock.QuantityInStock)
}

// Delete deletes a stock line
func (r *GormStockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Stock{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts stock lines matching the filter
func (r *GormStockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.filtered(r.db.WithContext(ctx).Model(&inventory.Stock{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForOwner counts a user's stock lines matching the filter
func (r *GormStockRepository) CountForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.filtered(
		r.db.WithContext(ctx).Model(&inventory.Stock{}).Where("user_id = ?", userID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormStockRepository) filtered(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "shop_id":
			query = query.Where("shop_id = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		case "out_of_stock":
			if value == true {
				query = query.Where("quantity_in_stock = 0")
			}
		}
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	return query
}

var _ inventory.StockRepository = (*GormStockRepository)(nil)
