package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period bounds an aggregate query; the range is half-open [Start, End)
type Period struct {
	Start time.Time
	End   time.Time
}

// DayRange returns a period covering n whole days ending today (inclusive)
func DayRange(days int) Period {
	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return Period{Start: end.AddDate(0, 0, -days), End: end}
}

// Summary aggregates income, spend and volume over a period
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	SaleCount     int64           `json:"sale_count"`
	ItemsSold     int64           `json:"items_sold"`
	StockCount    int64           `json:"stock_count"`
}

// DailyEntry is one calendar day in a breakdown
type DailyEntry struct {
	Date      string          `json:"date"`
	Income    decimal.Decimal `json:"income"`
	Expenses  decimal.Decimal `json:"expenses"`
	SaleCount int64           `json:"sale_count"`
}

// TopProduct is a product ranked by revenue
type TopProduct struct {
	Name     string          `json:"name"`
	Revenue  decimal.Decimal `json:"revenue"`
	Quantity int64           `json:"quantity"`
}

// ExpenseSlice is one category's share of spend
type ExpenseSlice struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// InventoryHealth summarizes shelf state across stock lines
type InventoryHealth struct {
	TotalItems    int64   `json:"total_items"`
	LowStock      int64   `json:"low_stock"`
	OutOfStock    int64   `json:"out_of_stock"`
	HealthPercent float64 `json:"health_percent"`
}

// ProductMargin estimates per-product profitability from lifetime sales.
// Cost is modelled as a fixed share of revenue.
type ProductMargin struct {
	Name          string          `json:"name"`
	QuantitySold  int64           `json:"quantity_sold"`
	Revenue       decimal.Decimal `json:"revenue"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent float64         `json:"margin_percent"`
}

// MarginAnalysis is the product margin list plus overall totals
type MarginAnalysis struct {
	Products      []ProductMargin `json:"products"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	MarginPercent float64         `json:"margin_percent"`
}

// Query scopes an aggregate read to a user and optionally one shop
type Query struct {
	UserID uuid.UUID
	ShopID *uuid.UUID
	Period Period
}
