package sales

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dukadash/backend/internal/domain/inventory"
	domsales "github.com/dukadash/backend/internal/domain/sales"
	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
)

type saleServiceFixture struct {
	service   *SaleService
	saleRepo  *MockSaleRepository
	stockRepo *MockStockRepository
	histories *MockHistoryRepository
	shops     *MockShopRepository
}

func newSaleServiceFixture() *saleServiceFixture {
	saleRepo := new(MockSaleRepository)
	stockRepo := new(MockStockRepository)
	histories := new(MockHistoryRepository)
	shops := new(MockShopRepository)
	scope := NewNoOpTransactionScope(saleRepo, stockRepo, histories)
	return &saleServiceFixture{
		service:   NewSaleService(saleRepo, shops, scope),
		saleRepo:  saleRepo,
		stockRepo: stockRepo,
		histories: histories,
		shops:     shops,
	}
}

func activeShopFixture(userID uuid.UUID) *shop.Shop {
	s := shop.NewDefaultShop(userID)
	return s
}

func stockFixture(t *testing.T, userID uuid.UUID, quantity int) *inventory.Stock {
	t.Helper()
	s, err := inventory.NewStock(userID, uuid.New(), "Sugar 1kg", "groceries",
		decimal.NewFromFloat(150.00), quantity, 10)
	require.NoError(t, err)
	return s
}

func TestRecordSale(t *testing.T) {
	t.Run("records sale with recomputed total and full ledger write", func(t *testing.T) {
		f := newSaleServiceFixture()
		userID := uuid.New()
		active := activeShopFixture(userID)
		stock := stockFixture(t, userID, 20)

		f.shops.On("FindActive", mock.Anything, userID).Return(active, nil)
		f.stockRepo.On("FindByIDForOwner", mock.Anything, userID, stock.ID).Return(stock, nil)
		f.stockRepo.On("DecrementOnSale", mock.Anything, stock.ID, 3).Return(17, nil)
		f.histories.On("Append", mock.Anything, mock.MatchedBy(func(h *inventory.StockHistory) bool {
			return h.Action == inventory.ActionSold && h.QuantityBefore == 20 && h.QuantityAfter == 17
		})).Return(nil)
		f.saleRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *domsales.Sale) bool {
			return s.Quantity == 3 && s.TotalAmount.Equal(decimal.NewFromFloat(450.00)) && s.ShopID == active.ID
		})).Return(nil)

		dto, err := f.service.RecordSale(context.Background(), userID, RecordSaleInput{
			StockID:      stock.ID,
			Quantity:     3,
			PricePerUnit: decimal.NewFromFloat(150.00),
		})
		require.NoError(t, err)

		assert.True(t, dto.TotalAmount.Equal(decimal.NewFromFloat(450.00)))
		assert.Equal(t, "Sugar 1kg", dto.StockName)
		f.saleRepo.AssertExpectations(t)
		f.histories.AssertExpectations(t)
	})

	t.Run("rejects mismatched client total before touching the ledger", func(t *testing.T) {
		f := newSaleServiceFixture()
		userID := uuid.New()
		active := activeShopFixture(userID)
		stock := stockFixture(t, userID, 20)

		f.shops.On("FindActive", mock.Anything, userID).Return(active, nil)
		f.stockRepo.On("FindByIDForOwner", mock.Anything, userID, stock.ID).Return(stock, nil)

		wrong := decimal.NewFromFloat(999.00)
		_, err := f.service.RecordSale(context.Background(), userID, RecordSaleInput{
			StockID:      stock.ID,
			Quantity:     3,
			PricePerUnit: decimal.NewFromFloat(150.00),
			TotalAmount:  &wrong,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		f.stockRepo.AssertNotCalled(t, "DecrementOnSale", mock.Anything, mock.Anything, mock.Anything)
		f.saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("insufficient stock aborts the sale", func(t *testing.T) {
		f := newSaleServiceFixture()
		userID := uuid.New()
		active := activeShopFixture(userID)
		stock := stockFixture(t, userID, 2)

		f.shops.On("FindActive", mock.Anything, userID).Return(active, nil)
		f.stockRepo.On("FindByIDForOwner", mock.Anything, userID, stock.ID).Return(stock, nil)

		_, err := f.service.RecordSale(context.Background(), userID, RecordSaleInput{
			StockID:      stock.ID,
			Quantity:     5,
			PricePerUnit: decimal.NewFromFloat(150.00),
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.Contains(t, domainErr.Message, "2")
		f.saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		f.histories.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("lost race on the conditional decrement fails the whole write", func(t *testing.T) {
		f := newSaleServiceFixture()
		userID := uuid.New()
		active := activeShopFixture(userID)
		stock := stockFixture(t, userID, 5)

		f.shops.On("FindActive", mock.Anything, userID).Return(active, nil)
		f.stockRepo.On("FindByIDForOwner", mock.Anything, userID, stock.ID).Return(stock, nil)
		f.stockRepo.On("DecrementOnSale", mock.Anything, stock.ID, 5).
			Return(0, shared.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock: only 1 available"))

		_, err := f.service.RecordSale(context.Background(), userID, RecordSaleInput{
			StockID:      stock.ID,
			Quantity:     5,
			PricePerUnit: decimal.NewFromFloat(150.00),
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		f.saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("history brackets the decremented quantity, not the stale read", func(t *testing.T) {
		f := newSaleServiceFixture()
		userID := uuid.New()
		active := activeShopFixture(userID)
		stock := stockFixture(t, userID, 100)

		f.shops.On("FindActive", mock.Anything, userID).Return(active, nil)
		f.stockRepo.On("FindByIDForOwner", mock.Anything, userID, stock.ID).Return(stock, nil)
		// A concurrent sale landed between this transaction's read and its
		// decrement: the store reports 60 left, not the 80 the read implies.
		f.stockRepo.On("DecrementOnSale", mock.Anything, stock.ID, 20).Return(60, nil)
		f.histories.On("Append", mock.Anything, mock.MatchedBy(func(h *inventory.StockHistory) bool {
			return h.QuantityBefore == 80 && h.QuantityAfter == 60
		})).Return(nil)
		f.saleRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		_, err := f.service.RecordSale(context.Background(), userID, RecordSaleInput{
			StockID:      stock.ID,
			Quantity:     20,
			PricePerUnit: decimal.NewFromFloat(150.00),
		})
		require.NoError(t, err)
		f.histories.AssertExpectations(t)
	})

	t.Run("bootstraps the default shop when the user has none", func(t *testing.T) {
		f := newSaleServiceFixture()
		userID := uuid.New()
		bootstrapped := shop.NewDefaultShop(userID)
		stock := stockFixture(t, userID, 20)

		f.shops.On("FindActive", mock.Anything, userID).Return(nil, shared.ErrNotFound)
		f.shops.On("EnsureDefault", mock.Anything, userID).Return(bootstrapped, nil)
		f.stockRepo.On("FindByIDForOwner", mock.Anything, userID, stock.ID).Return(stock, nil)
		f.stockRepo.On("DecrementOnSale", mock.Anything, stock.ID, 1).Return(19, nil)
		f.histories.On("Append", mock.Anything, mock.Anything).Return(nil)
		f.saleRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *domsales.Sale) bool {
			return s.ShopID == bootstrapped.ID
		})).Return(nil)

		dto, err := f.service.RecordSale(context.Background(), userID, RecordSaleInput{
			StockID:      stock.ID,
			Quantity:     1,
			PricePerUnit: decimal.NewFromFloat(150.00),
		})
		require.NoError(t, err)
		assert.Equal(t, bootstrapped.ID, dto.ShopID)
		f.shops.AssertExpectations(t)
	})
}

func TestDailySummary(t *testing.T) {
	f := newSaleServiceFixture()
	userID := uuid.New()
	active := activeShopFixture(userID)

	saleA, err := domsales.NewSale(userID, active.ID, uuid.New(), "Sugar 1kg", 2, decimal.NewFromInt(150), "")
	require.NoError(t, err)
	saleB, err := domsales.NewSale(userID, active.ID, uuid.New(), "Bread", 1, decimal.NewFromInt(65), "")
	require.NoError(t, err)

	f.shops.On("FindActive", mock.Anything, userID).Return(active, nil)
	f.saleRepo.On("FindInRange", mock.Anything, userID, &active.ID,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domsales.Sale{*saleA, *saleB}, nil)

	summary, err := f.service.DailySummary(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), summary.Date)
	assert.True(t, summary.TotalSales.Equal(decimal.NewFromInt(365)), "got %s", summary.TotalSales)
	assert.Equal(t, 2, summary.SaleCount)
	assert.Equal(t, 3, summary.ItemsSold)
}
