package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort direction, defaulting to DESC
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField checks the sort field against an allow list and falls
// back to defaultField. Order-by columns are interpolated into SQL, so
// anything outside the list is rejected.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

// StockSortFields contains allowed sort fields for stocks
var StockSortFields = map[string]bool{
	"id":                true,
	"created_at":        true,
	"updated_at":        true,
	"name":              true,
	"category":          true,
	"price":             true,
	"quantity_in_stock": true,
	"quantity_sold":     true,
	"min_stock_level":   true,
}

// SaleSortFields contains allowed sort fields for sales
var SaleSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"stock_name":   true,
	"quantity":     true,
	"total_amount": true,
}

// ExpenseSortFields contains allowed sort fields for expenses
var ExpenseSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"category":   true,
	"amount":     true,
}

// ShopSortFields contains allowed sort fields for shops
var ShopSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"name":       true,
	"is_active":  true,
}

// ReportFileSortFields contains allowed sort fields for report files
var ReportFileSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"filename":   true,
	"size_bytes": true,
}

// HistorySortFields contains allowed sort fields for stock history
var HistorySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"action":     true,
}
