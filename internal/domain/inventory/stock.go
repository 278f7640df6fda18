package inventory

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/shared"
)

// DefaultMinStockLevel is applied when a stock is created without an
// explicit reorder threshold.
const DefaultMinStockLevel = 10

// Stock is a product line tracked for a single shop. On-hand and sold
// quantities are whole units; money is decimal.
type Stock struct {
	shared.OwnedAggregateRoot
	ShopID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_stocks_shop_name,unique"`
	Name            string          `gorm:"size:255;not null;index:idx_stocks_shop_name,unique"`
	Category        string          `gorm:"size:100"`
	Price           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	QuantityInStock int             `gorm:"not null;default:0"`
	QuantitySold    int             `gorm:"not null;default:0"`
	MinStockLevel   int             `gorm:"not null;default:10"`
}

// TableName returns the database table name
func (Stock) TableName() string {
	return "stocks"
}

// NewStock creates a stock line for a shop
func NewStock(userID, shopID uuid.UUID, name, category string, price decimal.Decimal, initialQuantity, minStockLevel int) (*Stock, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Stock name is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Price cannot be negative")
	}
	if initialQuantity < 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Initial quantity cannot be negative")
	}
	if minStockLevel <= 0 {
		minStockLevel = DefaultMinStockLevel
	}

	return &Stock{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		ShopID:             shopID,
		Name:               name,
		Category:           category,
		Price:              price,
		QuantityInStock:    initialQuantity,
		QuantitySold:       0,
		MinStockLevel:      minStockLevel,
	}, nil
}

// Receive adds purchased units to the shelf and returns the history entry
// bracketing the change.
func (s *Stock) Receive(quantity int, note string) (*StockHistory, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity to add must be greater than zero")
	}

	before := s.QuantityInStock
	s.QuantityInStock += quantity
	s.UpdatedAt = nowFunc()

	return newStockHistory(s, before, s.QuantityInStock, ActionAdded, note), nil
}

// RecordSale removes sold units from the shelf. A sale that would drive
// on-hand below zero is rejected and leaves the stock untouched.
func (s *Stock) RecordSale(quantity int, note string) (*StockHistory, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity sold must be greater than zero")
	}
	if quantity > s.QuantityInStock {
		return nil, shared.NewDomainErrorf("INSUFFICIENT_STOCK",
			"Insufficient stock: only %d available", s.QuantityInStock)
	}

	before := s.QuantityInStock
	s.QuantityInStock -= quantity
	s.QuantitySold += quantity
	s.UpdatedAt = nowFunc()

	return newStockHistory(s, before, s.QuantityInStock, ActionSold, note), nil
}

// SaleEntry brackets a sale decrement the store has already applied.
// remaining is the post-decrement on-hand reported by the store; under
// concurrent sales it can be lower than this instance's view, and the
// store's value is the one the audit trail must record.
func (s *Stock) SaleEntry(quantity, remaining int, note string) *StockHistory {
	return newStockHistory(s, remaining+quantity, remaining, ActionSold, note)
}

// Adjust sets on-hand to a counted value, for reconciling the ledger with
// a physical stock take.
func (s *Stock) Adjust(actualQuantity int, note string) (*StockHistory, error) {
	if actualQuantity < 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Adjusted quantity cannot be negative")
	}

	before := s.QuantityInStock
	s.QuantityInStock = actualQuantity
	s.UpdatedAt = nowFunc()

	return newStockHistory(s, before, s.QuantityInStock, ActionAdjusted, note), nil
}

// UpdateDetails changes the descriptive fields of the stock line
func (s *Stock) UpdateDetails(name, category string, price decimal.Decimal, minStockLevel int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Stock name is required")
	}
	if price.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Price cannot be negative")
	}
	if minStockLevel <= 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Minimum stock level must be greater than zero")
	}

	s.Name = name
	s.Category = category
	s.Price = price
	s.MinStockLevel = minStockLevel
	s.UpdatedAt = nowFunc()
	return nil
}

// IsOutOfStock reports whether the shelf is empty
func (s *Stock) IsOutOfStock() bool {
	return s.QuantityInStock == 0
}

// IsLowStock reports whether on-hand has fallen below the reorder threshold
// without being empty
func (s *Stock) IsLowStock() bool {
	return s.QuantityInStock > 0 && s.QuantityInStock < s.MinStockLevel
}

// Deficit returns how many units are needed to reach the reorder threshold
func (s *Stock) Deficit() int {
	d := s.MinStockLevel - s.QuantityInStock
	if d < 0 {
		return 0
	}
	return d
}

// StockValue returns price times on-hand quantity
func (s *Stock) StockValue() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.QuantityInStock)))
}
