package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dukadash/backend/internal/domain/finance"
	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
)

// MockExpenseRepository mocks finance.ExpenseRepository
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Save(ctx context.Context, entity *finance.Expense) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseRepository) FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*finance.Expense, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]finance.Expense, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) CountForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseRepository) FindByShop(ctx context.Context, userID, shopID uuid.UUID, filter shared.Filter) ([]finance.Expense, error) {
	args := m.Called(ctx, userID, shopID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindInRange(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID, start, end time.Time) ([]finance.Expense, error) {
	args := m.Called(ctx, userID, shopID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
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

func TestCreateExpense(t *testing.T) {
	t.Run("creates expense in an owned shop", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		shops := new(MockShopRepository)
		service := NewExpenseService(expenses, shops)
		userID := uuid.New()
		owned := shop.NewDefaultShop(userID)

		shops.On("FindByIDForOwner", mock.Anything, userID, owned.ID).Return(owned, nil)
		expenses.On("Save", mock.Anything, mock.MatchedBy(func(e *finance.Expense) bool {
			return e.Category == finance.CategoryRent && e.Amount.Equal(decimal.NewFromInt(15000))
		})).Return(nil)

		dto, err := service.CreateExpense(context.Background(), userID, CreateExpenseInput{
			ShopID:      owned.ID,
			Category:    "rent",
			Description: "October rent",
			Amount:      decimal.NewFromInt(15000),
		})
		require.NoError(t, err)
		assert.Equal(t, "rent", dto.Category)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		shops := new(MockShopRepository)
		service := NewExpenseService(expenses, shops)
		userID := uuid.New()
		owned := shop.NewDefaultShop(userID)

		shops.On("FindByIDForOwner", mock.Anything, userID, owned.ID).Return(owned, nil)

		_, err := service.CreateExpense(context.Background(), userID, CreateExpenseInput{
			ShopID:      owned.ID,
			Category:    "fuel",
			Description: "petrol",
			Amount:      decimal.NewFromInt(500),
		})
		require.Error(t, err)
		expenses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("refuses a foreign shop", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		shops := new(MockShopRepository)
		service := NewExpenseService(expenses, shops)
		userID := uuid.New()
		shopID := uuid.New()

		shops.On("FindByIDForOwner", mock.Anything, userID, shopID).Return(nil, shared.ErrNotFound)

		_, err := service.CreateExpense(context.Background(), userID, CreateExpenseInput{
			ShopID:      shopID,
			Category:    "rent",
			Description: "rent",
			Amount:      decimal.NewFromInt(100),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestMonthlySummary(t *testing.T) {
	expenses := new(MockExpenseRepository)
	shops := new(MockShopRepository)
	service := NewExpenseService(expenses, shops)
	userID := uuid.New()
	shopID := uuid.New()

	rent, err := finance.NewExpense(userID, shopID, finance.CategoryRent, "rent", decimal.NewFromInt(15000))
	require.NoError(t, err)
	power, err := finance.NewExpense(userID, shopID, finance.CategoryUtilities, "tokens", decimal.NewFromInt(1200))
	require.NoError(t, err)
	water, err := finance.NewExpense(userID, shopID, finance.CategoryUtilities, "water", decimal.NewFromInt(800))
	require.NoError(t, err)

	expenses.On("FindInRange", mock.Anything, userID, (*uuid.UUID)(nil),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]finance.Expense{*rent, *power, *water}, nil)

	summary, err := service.MonthlySummary(context.Background(), userID, nil)
	require.NoError(t, err)

	assert.True(t, summary.Total.Equal(decimal.NewFromInt(17000)), "got %s", summary.Total)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "rent", summary.Categories[0].Category)
	assert.Equal(t, "utilities", summary.Categories[1].Category)
	assert.Equal(t, 2, summary.Categories[1].Count)
	assert.True(t, summary.Categories[1].Total.Equal(decimal.NewFromInt(2000)))
}
