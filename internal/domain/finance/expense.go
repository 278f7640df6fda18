package finance

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/shared"
)

// ExpenseCategory is the fixed set of buckets expenses fall into
type ExpenseCategory string

const (
	CategoryRent        ExpenseCategory = "rent"
	CategoryUtilities   ExpenseCategory = "utilities"
	CategoryTransport   ExpenseCategory = "transport"
	CategorySupplies    ExpenseCategory = "supplies"
	CategorySalary      ExpenseCategory = "salary"
	CategoryMarketing   ExpenseCategory = "marketing"
	CategoryMaintenance ExpenseCategory = "maintenance"
	CategoryOther       ExpenseCategory = "other"
)

// Categories lists all valid expense categories in display order
func Categories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryRent,
		CategoryUtilities,
		CategoryTransport,
		CategorySupplies,
		CategorySalary,
		CategoryMarketing,
		CategoryMaintenance,
		CategoryOther,
	}
}

// IsValid reports whether the category is one of the fixed buckets
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case CategoryRent, CategoryUtilities, CategoryTransport, CategorySupplies,
		CategorySalary, CategoryMarketing, CategoryMaintenance, CategoryOther:
		return true
	}
	return false
}

// Expense is a money-out record for a shop
type Expense struct {
	shared.OwnedAggregateRoot
	ShopID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    ExpenseCategory `gorm:"size:20;not null;index"`
	Description string          `gorm:"size:500;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the database table name
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates an expense record
func NewExpense(userID, shopID uuid.UUID, category ExpenseCategory, description string, amount decimal.Decimal) (*Expense, error) {
	if !category.IsValid() {
		return nil, shared.NewDomainErrorf("VALIDATION_ERROR", "Unknown expense category %q", string(category))
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense description is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense amount must be greater than zero")
	}

	return &Expense{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		ShopID:             shopID,
		Category:           category,
		Description:        description,
		Amount:             amount,
	}, nil
}

// Update changes the mutable fields of the expense
func (e *Expense) Update(category ExpenseCategory, description string, amount decimal.Decimal) error {
	if !category.IsValid() {
		return shared.NewDomainErrorf("VALIDATION_ERROR", "Unknown expense category %q", string(category))
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Expense description is required")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("VALIDATION_ERROR", "Expense amount must be greater than zero")
	}

	e.Category = category
	e.Description = description
	e.Amount = amount
	return nil
}
