package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dukadash/backend/internal/domain/inventory"
	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
)

// MockStockRepository mocks inventory.StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Stock, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) Save(ctx context.Context, entity *inventory.Stock) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockStockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockRepository) FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]inventory.Stock, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) CountForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockRepository) FindByShop(ctx context.Context, userID, shopID uuid.UUID, filter shared.Filter) ([]inventory.Stock, error) {
	args := m.Called(ctx, userID, shopID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) FindBelowThreshold(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID) ([]inventory.Stock, error) {
	args := m.Called(ctx, userID, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) SaveWithLock(ctx context.Context, stock *inventory.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) DecrementOnSale(ctx context.Context, stockID uuid.UUID, quantity int) (int, error) {
	args := m.Called(ctx, stockID, quantity)
	return args.Int(0), args.Error(1)
}

// MockStockHistoryRepository mocks inventory.StockHistoryRepository
type MockStockHistoryRepository struct {
	mock.Mock
}

func (m *MockStockHistoryRepository) Append(ctx context.Context, entry *inventory.StockHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStockHistoryRepository) FindByStock(ctx context.Context, userID, stockID uuid.UUID, filter shared.Filter) ([]inventory.StockHistory, error) {
	args := m.Called(ctx, userID, stockID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockHistory), args.Error(1)
}

func (m *MockStockHistoryRepository) CountByStock(ctx context.Context, userID, stockID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, stockID)
	return args.Get(0).(int64), args.Error(1)
}

// MockShopRepository mocks shop.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) Save(ctx context.Context, entity *shop.Shop) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShopRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopRepository) FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) CountForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopRepository) FindActive(ctx context.Context, userID uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) Activate(ctx context.Context, userID, shopID uuid.UUID) error {
	args := m.Called(ctx, userID, shopID)
	return args.Error(0)
}

func (m *MockShopRepository) EnsureDefault(ctx context.Context, userID uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}
