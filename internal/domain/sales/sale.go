package sales

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/shared"
)

// Sale is an immutable record of units sold from a stock line. The total
// is always recomputed from quantity and unit price; a client-supplied
// total that disagrees is rejected rather than trusted.
type Sale struct {
	shared.OwnedAggregateRoot
	ShopID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockName    string          `gorm:"size:255;not null"`
	Quantity     int             `gorm:"not null"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Note         string          `gorm:"size:500"`
}

// TableName returns the database table name
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a sale with a server-computed total
func NewSale(userID, shopID, stockID uuid.UUID, stockName string, quantity int, pricePerUnit decimal.Decimal, note string) (*Sale, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity sold must be greater than zero")
	}
	if pricePerUnit.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Price per unit cannot be negative")
	}

	return &Sale{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		ShopID:             shopID,
		StockID:            stockID,
		StockName:          stockName,
		Quantity:           quantity,
		PricePerUnit:       pricePerUnit,
		TotalAmount:        ComputeTotal(quantity, pricePerUnit),
		Note:               note,
	}, nil
}

// ComputeTotal returns quantity times unit price
func ComputeTotal(quantity int, pricePerUnit decimal.Decimal) decimal.Decimal {
	return pricePerUnit.Mul(decimal.NewFromInt(int64(quantity)))
}

// VerifyClientTotal checks a client-supplied total against the computed one
func (s *Sale) VerifyClientTotal(clientTotal decimal.Decimal) error {
	if !clientTotal.Equal(s.TotalAmount) {
		return shared.NewDomainErrorf("VALIDATION_ERROR",
			"Total amount mismatch: expected %s, got %s", s.TotalAmount.String(), clientTotal.String())
	}
	return nil
}
