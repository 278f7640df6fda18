package persistence

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dukadash/backend/internal/domain/finance"
	"github.com/dukadash/backend/internal/domain/inventory"
	"github.com/dukadash/backend/internal/domain/report"
	"github.com/dukadash/backend/internal/domain/sales"
)

// GormAggregateRepository implements report.AggregateRepository with raw
// aggregate queries over the sales, expenses and stocks tables.
type GormAggregateRepository struct {
	db *gorm.DB
}

// NewGormAggregateRepository creates a GormAggregateRepository
func NewGormAggregateRepository(db *gorm.DB) *GormAggregateRepository {
	return &GormAggregateRepository{db: db}
}

func (r *GormAggregateRepository) salesInPeriod(ctx context.Context, q report.Query) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&sales.Sale{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", q.UserID, q.Period.Start, q.Period.End)
	if q.ShopID != nil {
		query = query.Where("shop_id = ?", *q.ShopID)
	}
	return query
}

func (r *GormAggregateRepository) expensesInPeriod(ctx context.Context, q report.Query) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&finance.Expense{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", q.UserID, q.Period.Start, q.Period.End)
	if q.ShopID != nil {
		query = query.Where("shop_id = ?", *q.ShopID)
	}
	return query
}

// Summarize aggregates income, spend and volume over the period
func (r *GormAggregateRepository) Summarize(ctx context.Context, q report.Query) (*report.Summary, error) {
	var salesAgg struct {
		Income    decimal.Decimal
		SaleCount int64
		ItemsSold int64
	}
	if err := r.salesInPeriod(ctx, q).
		Select("COALESCE(SUM(total_amount), 0) AS income, COUNT(*) AS sale_count, COALESCE(SUM(quantity), 0) AS items_sold").
		Scan(&salesAgg).Error; err != nil {
		return nil, err
	}

	var expenseAgg struct {
		Total decimal.Decimal
	}
	if err := r.expensesInPeriod(ctx, q).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&expenseAgg).Error; err != nil {
		return nil, err
	}

	stockQuery := r.db.WithContext(ctx).Model(&inventory.Stock{}).Where("user_id = ?", q.UserID)
	if q.ShopID != nil {
		stockQuery = stockQuery.Where("shop_id = ?", *q.ShopID)
	}
	var stockCount int64
	if err := stockQuery.Count(&stockCount).Error; err != nil {
		return nil, err
	}

	return &report.Summary{
		TotalIncome:   salesAgg.Income,
		TotalExpenses: expenseAgg.Total,
		NetProfit:     salesAgg.Income.Sub(expenseAgg.Total),
		SaleCount:     salesAgg.SaleCount,
		ItemsSold:     salesAgg.ItemsSold,
		StockCount:    stockCount,
	}, nil
}

// DailyBreakdown merges per-day sale and expense aggregates over the period
func (r *GormAggregateRepository) DailyBreakdown(ctx context.Context, q report.Query) ([]report.DailyEntry, error) {
	var saleRows []struct {
		Day       string
		Income    decimal.Decimal
		SaleCount int64
	}
	if err := r.salesInPeriod(ctx, q).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS day, COALESCE(SUM(total_amount), 0) AS income, COUNT(*) AS sale_count").
		Group("day").
		Scan(&saleRows).Error; err != nil {
		return nil, err
	}

	var expenseRows []struct {
		Day   string
		Total decimal.Decimal
	}
	if err := r.expensesInPeriod(ctx, q).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS day, COALESCE(SUM(amount), 0) AS total").
		Group("day").
		Scan(&expenseRows).Error; err != nil {
		return nil, err
	}

	byDay := make(map[string]*report.DailyEntry)
	for _, row := range saleRows {
		byDay[row.Day] = &report.DailyEntry{
			Date:      row.Day,
			Income:    row.Income,
			Expenses:  decimal.Zero,
			SaleCount: row.SaleCount,
		}
	}
	for _, row := range expenseRows {
		if entry, ok := byDay[row.Day]; ok {
			entry.Expenses = row.Total
			continue
		}
		byDay[row.Day] = &report.DailyEntry{
			Date:     row.Day,
			Income:   decimal.Zero,
			Expenses: row.Total,
		}
	}

	entries := make([]report.DailyEntry, 0, len(byDay))
	for _, entry := range byDay {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries, nil
}

// TopProducts ranks products by revenue within the period
func (r *GormAggregateRepository) TopProducts(ctx context.Context, q report.Query, limit int) ([]report.TopProduct, error) {
	var products []report.TopProduct
	if err := r.salesInPeriod(ctx, q).
		Select("stock_name AS name, COALESCE(SUM(total_amount), 0) AS revenue, COALESCE(SUM(quantity), 0) AS quantity").
		Group("stock_name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ExpenseBreakdown groups spend by category within the period
func (r *GormAggregateRepository) ExpenseBreakdown(ctx context.Context, q report.Query) ([]report.ExpenseSlice, error) {
	var slices []report.ExpenseSlice
	if err := r.expensesInPeriod(ctx, q).
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("category").
		Order("total DESC").
		Scan(&slices).Error; err != nil {
		return nil, err
	}
	return slices, nil
}

// InventoryHealth counts shelf states across stock lines
func (r *GormAggregateRepository) InventoryHealth(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID) (*report.InventoryHealth, error) {
	query := r.db.WithContext(ctx).Model(&inventory.Stock{}).Where("user_id = ?", userID)
	if shopID != nil {
		query = query.Where("shop_id = ?", *shopID)
	}

	var counts struct {
		Total      int64
		LowStock   int64
		OutOfStock int64
	}
	if err := query.
		Select("COUNT(*) AS total, " +
			"COUNT(*) FILTER (WHERE quantity_in_stock > 0 AND quantity_in_stock < min_stock_level) AS low_stock, " +
			"COUNT(*) FILTER (WHERE quantity_in_stock = 0) AS out_of_stock").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	health := &report.InventoryHealth{
		TotalItems: counts.Total,
		LowStock:   counts.LowStock,
		OutOfStock: counts.OutOfStock,
	}
	if counts.Total > 0 {
		healthy := counts.Total - counts.LowStock - counts.OutOfStock
		health.HealthPercent = float64(healthy) / float64(counts.Total) * 100
	}
	return health, nil
}

// ProductSales returns lifetime revenue per product from the stock ledger
func (r *GormAggregateRepository) ProductSales(ctx context.Context, userID uuid.UUID) ([]report.TopProduct, error) {
	var products []report.TopProduct
	if err := r.db.WithContext(ctx).Model(&inventory.Stock{}).
		Where("user_id = ? AND quantity_sold > 0", userID).
		Select("name, COALESCE(SUM(price * quantity_sold), 0) AS revenue, COALESCE(SUM(quantity_sold), 0) AS quantity").
		Group("name").
		Order("revenue DESC").
		Scan(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

var _ report.AggregateRepository = (*GormAggregateRepository)(nil)
