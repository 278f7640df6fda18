package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/sales"
)

// RecordSaleInput carries a sale to record. TotalAmount is optional; when
// present it must agree with quantity times unit price.
type RecordSaleInput struct {
	StockID      uuid.UUID        `json:"stock_id" binding:"required"`
	Quantity     int              `json:"quantity" binding:"required"`
	PricePerUnit decimal.Decimal  `json:"price_per_unit" binding:"required"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	Note         string           `json:"note"`
}

// SaleDTO is the outward shape of a recorded sale
type SaleDTO struct {
	ID           uuid.UUID       `json:"id"`
	ShopID       uuid.UUID       `json:"shop_id"`
	StockID      uuid.UUID       `json:"stock_id"`
	StockName    string          `json:"stock_name"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DailySummaryDTO rolls up one day of selling
type DailySummaryDTO struct {
	Date       string          `json:"date"`
	TotalSales decimal.Decimal `json:"total_sales"`
	SaleCount  int             `json:"sale_count"`
	ItemsSold  int             `json:"items_sold"`
}

func toSaleDTO(s *sales.Sale) *SaleDTO {
	return &SaleDTO{
		ID:           s.ID,
		ShopID:       s.ShopID,
		StockID:      s.StockID,
		StockName:    s.StockName,
		Quantity:     s.Quantity,
		PricePerUnit: s.PricePerUnit,
		TotalAmount:  s.TotalAmount,
		Note:         s.Note,
		CreatedAt:    s.CreatedAt,
	}
}
