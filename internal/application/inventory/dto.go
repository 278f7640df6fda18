package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/inventory"
)

// CreateStockInput carries a new stock line
type CreateStockInput struct {
	ShopID        uuid.UUID       `json:"shop_id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	Quantity      int             `json:"quantity"`
	MinStockLevel int             `json:"min_stock_level"`
}

// UpdateStockInput carries changes to the descriptive fields
type UpdateStockInput struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	MinStockLevel int             `json:"min_stock_level" binding:"required"`
}

// QuantityInput carries a quantity change with an optional note
type QuantityInput struct {
	Quantity int    `json:"quantity" binding:"required"`
	Note     string `json:"note"`
}

// StockDTO is the outward shape of a stock line
type StockDTO struct {
	ID              uuid.UUID       `json:"id"`
	ShopID          uuid.UUID       `json:"shop_id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantity_in_stock"`
	QuantitySold    int             `json:"quantity_sold"`
	MinStockLevel   int             `json:"min_stock_level"`
	StockValue      decimal.Decimal `json:"stock_value"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// HistoryDTO is the outward shape of an audit entry
type HistoryDTO struct {
	ID             uuid.UUID `json:"id"`
	StockID        uuid.UUID `json:"stock_id"`
	QuantityBefore int       `json:"quantity_before"`
	QuantityAfter  int       `json:"quantity_after"`
	Action         string    `json:"action"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// SummaryDTO rolls up a user's stock lines
type SummaryDTO struct {
	TotalItems   int             `json:"total_items"`
	TotalOnHand  int             `json:"total_on_hand"`
	TotalSold    int             `json:"total_sold"`
	AveragePrice decimal.Decimal `json:"average_price"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

// AlertItemDTO is one stock line needing restocking
type AlertItemDTO struct {
	StockID       uuid.UUID `json:"stock_id"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	MinStockLevel int       `json:"min_stock_level"`
	Deficit       int       `json:"deficit"`
	Severity      string    `json:"severity"`
}

// AlertReportDTO is the full low-stock evaluation, critical lines first
type AlertReportDTO struct {
	CriticalCount int            `json:"critical_count"`
	WarningCount  int            `json:"warning_count"`
	TotalAlerts   int            `json:"total_alerts"`
	Items         []AlertItemDTO `json:"items"`
}

func toStockDTO(s *inventory.Stock) *StockDTO {
	return &StockDTO{
		ID:              s.ID,
		ShopID:          s.ShopID,
		Name:            s.Name,
		Category:        s.Category,
		Price:           s.Price,
		QuantityInStock: s.QuantityInStock,
		QuantitySold:    s.QuantitySold,
		MinStockLevel:   s.MinStockLevel,
		StockValue:      s.StockValue(),
		UpdatedAt:       s.UpdatedAt,
	}
}

func toHistoryDTO(h *inventory.StockHistory) HistoryDTO {
	return HistoryDTO{
		ID:             h.ID,
		StockID:        h.StockID,
		QuantityBefore: h.QuantityBefore,
		QuantityAfter:  h.QuantityAfter,
		Action:         string(h.Action),
		Note:           h.Note,
		CreatedAt:      h.CreatedAt,
	}
}

func toAlertItemDTO(s *inventory.Stock) AlertItemDTO {
	return AlertItemDTO{
		StockID:       s.ID,
		Name:          s.Name,
		Quantity:      s.QuantityInStock,
		MinStockLevel: s.MinStockLevel,
		Deficit:       s.Deficit(),
		Severity:      string(s.AlertSeverity()),
	}
}
