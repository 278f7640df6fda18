package inventory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/inventory"
	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
)

// StockService manages the stock ledger for a shop owner
type StockService struct {
	stocks    inventory.StockRepository
	histories inventory.StockHistoryRepository
	shops     shop.ShopRepository
	txScope   TransactionScope
}

// NewStockService creates a stock service
func NewStockService(
	stocks inventory.StockRepository,
	histories inventory.StockHistoryRepository,
	shops shop.ShopRepository,
	txScope TransactionScope,
) *StockService {
	return &StockService{
		stocks:    stocks,
		histories: histories,
		shops:     shops,
		txScope:   txScope,
	}
}

// CreateStock adds a stock line to one of the caller's shops
func (s *StockService) CreateStock(ctx context.Context, userID uuid.UUID, input CreateStockInput) (*StockDTO, error) {
	if _, err := s.shops.FindByIDForOwner(ctx, userID, input.ShopID); err != nil {
		return nil, err
	}

	stock, err := inventory.NewStock(userID, input.ShopID, input.Name, input.Category,
		input.Price, input.Quantity, input.MinStockLevel)
	if err != nil {
		return nil, err
	}

	if err := s.stocks.Save(ctx, stock); err != nil {
		return nil, err
	}

	if stock.QuantityInStock > 0 {
		entry := &inventory.StockHistory{
			BaseEntity:     shared.NewBaseEntity(),
			StockID:        stock.ID,
			ShopID:         stock.ShopID,
			UserID:         stock.UserID,
			QuantityBefore: 0,
			QuantityAfter:  stock.QuantityInStock,
			Action:         inventory.ActionAdded,
			Note:           "initial stock",
		}
		if err := s.histories.Append(ctx, entry); err != nil {
			return nil, err
		}
	}

	return toStockDTO(stock), nil
}

// GetStock returns one stock line owned by the caller
func (s *StockService) GetStock(ctx context.Context, userID, stockID uuid.UUID) (*StockDTO, error) {
	stock, err := s.stocks.FindByIDForOwner(ctx, userID, stockID)
	if err != nil {
		return nil, err
	}
	return toStockDTO(stock), nil
}

// ListStocks returns the caller's stock lines, optionally scoped to a shop
func (s *StockService) ListStocks(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID, filter shared.Filter) (*shared.Paginated[StockDTO], error) {
	var (
		stocks []inventory.Stock
		err    error
	)
	if shopID != nil {
		stocks, err = s.stocks.FindByShop(ctx, userID, *shopID, filter)
	} else {
		stocks, err = s.stocks.FindAllForOwner(ctx, userID, filter)
	}
	if err != nil {
		return nil, err
	}

	countFilter := filter
	if shopID != nil {
		countFilter = countFilter.WithFilter("shop_id", *shopID)
	}
	total, err := s.stocks.CountForOwner(ctx, userID, countFilter)
	if err != nil {
		return nil, err
	}

	dtos := make([]StockDTO, len(stocks))
	for i := range stocks {
		dtos[i] = *toStockDTO(&stocks[i])
	}
	result := shared.NewPaginated(dtos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateStock changes the descriptive fields of a stock line
func (s *StockService) UpdateStock(ctx context.Context, userID, stockID uuid.UUID, input UpdateStockInput) (*StockDTO, error) {
	stock, err := s.stocks.FindByIDForOwner(ctx, userID, stockID)
	if err != nil {
		return nil, err
	}

	if err := stock.UpdateDetails(input.Name, input.Category, input.Price, input.MinStockLevel); err != nil {
		return nil, err
	}

	if err := s.stocks.SaveWithLock(ctx, stock); err != nil {
		return nil, err
	}
	return toStockDTO(stock), nil
}

// DeleteStock removes a stock line owned by the caller
func (s *StockService) DeleteStock(ctx context.Context, userID, stockID uuid.UUID) error {
	stock, err := s.stocks.FindByIDForOwner(ctx, userID, stockID)
	if err != nil {
		return err
	}
	return s.stocks.Delete(ctx, stock.ID)
}

// AddStock receives purchased units onto the shelf. The quantity change
// and its history entry commit atomically.
func (s *StockService) AddStock(ctx context.Context, userID, stockID uuid.UUID, input QuantityInput) (*StockDTO, error) {
	var dto *StockDTO
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		stock, err := repos.StockRepo().FindByIDForOwner(ctx, userID, stockID)
		if err != nil {
			return err
		}

		entry, err := stock.Receive(input.Quantity, input.Note)
		if err != nil {
			return err
		}

		if err := repos.StockRepo().SaveWithLock(ctx, stock); err != nil {
			return err
		}
		if err := repos.HistoryRepo().Append(ctx, entry); err != nil {
			return err
		}

		dto = toStockDTO(stock)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// AdjustStock reconciles on-hand with a physical count
func (s *StockService) AdjustStock(ctx context.Context, userID, stockID uuid.UUID, input QuantityInput) (*StockDTO, error) {
	var dto *StockDTO
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		stock, err := repos.StockRepo().FindByIDForOwner(ctx, userID, stockID)
		if err != nil {
			return err
		}

		entry, err := stock.Adjust(input.Quantity, input.Note)
		if err != nil {
			return err
		}

		if err := repos.StockRepo().SaveWithLock(ctx, stock); err != nil {
			return err
		}
		if err := repos.HistoryRepo().Append(ctx, entry); err != nil {
			return err
		}

		dto = toStockDTO(stock)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// History lists the audit trail of one stock line, newest first
func (s *StockService) History(ctx context.Context, userID, stockID uuid.UUID, filter shared.Filter) (*shared.Paginated[HistoryDTO], error) {
	if _, err := s.stocks.FindByIDForOwner(ctx, userID, stockID); err != nil {
		return nil, err
	}

	entries, err := s.histories.FindByStock(ctx, userID, stockID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.histories.CountByStock(ctx, userID, stockID)
	if err != nil {
		return nil, err
	}

	dtos := make([]HistoryDTO, len(entries))
	for i := range entries {
		dtos[i] = toHistoryDTO(&entries[i])
	}
	result := shared.NewPaginated(dtos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Summary rolls up the caller's stock lines
func (s *StockService) Summary(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID) (*SummaryDTO, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 0 // unpaginated

	var (
		stocks []inventory.Stock
		err    error
	)
	if shopID != nil {
		stocks, err = s.stocks.FindByShop(ctx, userID, *shopID, filter)
	} else {
		stocks, err = s.stocks.FindAllForOwner(ctx, userID, filter)
	}
	if err != nil {
		return nil, err
	}

	summary := &SummaryDTO{
		AveragePrice: decimal.Zero,
		TotalValue:   decimal.Zero,
	}
	priceSum := decimal.Zero
	for i := range stocks {
		summary.TotalItems++
		summary.TotalOnHand += stocks[i].QuantityInStock
		summary.TotalSold += stocks[i].QuantitySold
		priceSum = priceSum.Add(stocks[i].Price)
		summary.TotalValue = summary.TotalValue.Add(stocks[i].StockValue())
	}
	if summary.TotalItems > 0 {
		summary.AveragePrice = priceSum.DivRound(decimal.NewFromInt(int64(summary.TotalItems)), 2)
	}
	return summary, nil
}

// EvaluateAlerts classifies every stock line under its reorder threshold.
// Empty shelves come first, then warnings by deficit descending.
func (s *StockService) EvaluateAlerts(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID) (*AlertReportDTO, error) {
	stocks, err := s.stocks.FindBelowThreshold(ctx, userID, shopID)
	if err != nil {
		return nil, err
	}

	report := &AlertReportDTO{Items: make([]AlertItemDTO, 0, len(stocks))}
	for i := range stocks {
		severity := stocks[i].AlertSeverity()
		if severity == inventory.SeverityNone {
			continue
		}
		if severity == inventory.SeverityCritical {
			report.CriticalCount++
		} else {
			report.WarningCount++
		}
		report.Items = append(report.Items, toAlertItemDTO(&stocks[i]))
	}
	report.TotalAlerts = report.CriticalCount + report.WarningCount

	sort.SliceStable(report.Items, func(i, j int) bool {
		if report.Items[i].Severity != report.Items[j].Severity {
			return report.Items[i].Severity == string(inventory.SeverityCritical)
		}
		return report.Items[i].Deficit > report.Items[j].Deficit
	})

	return report, nil
}
