package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/sales"
	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
)

// SaleService records and lists sales for a shop owner
type SaleService struct {
	saleRepo sales.SaleRepository
	shops    shop.ShopRepository
	txScope  TransactionScope
}

// NewSaleService creates a sale service
func NewSaleService(saleRepo sales.SaleRepository, shops shop.ShopRepository, txScope TransactionScope) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		shops:    shops,
		txScope:  txScope,
	}
}

// activeShop resolves the caller's active shop, provisioning the default
// shop for users who have none yet.
func (s *SaleService) activeShop(ctx context.Context, userID uuid.UUID) (*shop.Shop, error) {
	active, err := s.shops.FindActive(ctx, userID)
	if err == nil {
		return active, nil
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND" {
		return s.shops.EnsureDefault(ctx, userID)
	}
	return nil, err
}

// RecordSale writes the sale, decrements the stock ledger and appends the
// audit entry inside a single transaction. A sale the shelf cannot cover
// fails with INSUFFICIENT_STOCK and leaves every table untouched.
func (s *SaleService) RecordSale(ctx context.Context, userID uuid.UUID, input RecordSaleInput) (*SaleDTO, error) {
	active, err := s.activeShop(ctx, userID)
	if err != nil {
		return nil, err
	}

	var dto *SaleDTO
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		stock, err := repos.StockRepo().FindByIDForOwner(ctx, userID, input.StockID)
		if err != nil {
			return err
		}

		sale, err := sales.NewSale(userID, active.ID, stock.ID, stock.Name,
			input.Quantity, input.PricePerUnit, input.Note)
		if err != nil {
			return err
		}
		if input.TotalAmount != nil {
			if err := sale.VerifyClientTotal(*input.TotalAmount); err != nil {
				return err
			}
		}

		if _, err := stock.RecordSale(input.Quantity, input.Note); err != nil {
			return err
		}

		// The conditional update is the concurrency guard; the domain check
		// above only rejects what is already visibly short. The audit entry
		// brackets the on-hand quantity the update reports back, not this
		// transaction's earlier read, which a concurrent sale may have staled.
		remaining, err := repos.StockRepo().DecrementOnSale(ctx, stock.ID, input.Quantity)
		if err != nil {
			return err
		}
		entry := stock.SaleEntry(input.Quantity, remaining, input.Note)
		if err := repos.HistoryRepo().Append(ctx, entry); err != nil {
			return err
		}
		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}

		dto = toSaleDTO(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListSales returns the active shop's sales, newest first
func (s *SaleService) ListSales(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[SaleDTO], error) {
	active, err := s.activeShop(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.saleRepo.FindByShop(ctx, userID, active.ID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.saleRepo.CountForOwner(ctx, userID, filter.WithFilter("shop_id", active.ID))
	if err != nil {
		return nil, err
	}

	dtos := make([]SaleDTO, len(items))
	for i := range items {
		dtos[i] = *toSaleDTO(&items[i])
	}
	result := shared.NewPaginated(dtos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// GetSale returns one sale owned by the caller
func (s *SaleService) GetSale(ctx context.Context, userID, saleID uuid.UUID) (*SaleDTO, error) {
	sale, err := s.saleRepo.FindByIDForOwner(ctx, userID, saleID)
	if err != nil {
		return nil, err
	}
	return toSaleDTO(sale), nil
}

// DailySummary rolls up the current day's selling for the active shop
func (s *SaleService) DailySummary(ctx context.Context, userID uuid.UUID) (*DailySummaryDTO, error) {
	return s.daySummary(ctx, userID, 0)
}

// YesterdaySummary rolls up the previous day's selling
func (s *SaleService) YesterdaySummary(ctx context.Context, userID uuid.UUID) (*DailySummaryDTO, error) {
	return s.daySummary(ctx, userID, -1)
}

func (s *SaleService) daySummary(ctx context.Context, userID uuid.UUID, dayOffset int) (*DailySummaryDTO, error) {
	active, err := s.activeShop(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, dayOffset)
	end := start.AddDate(0, 0, 1)

	items, err := s.saleRepo.FindInRange(ctx, userID, &active.ID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &DailySummaryDTO{
		Date:       start.Format("2006-01-02"),
		TotalSales: decimal.Zero,
	}
	for i := range items {
		summary.TotalSales = summary.TotalSales.Add(items[i].TotalAmount)
		summary.SaleCount++
		summary.ItemsSold += items[i].Quantity
	}
	return summary, nil
}
