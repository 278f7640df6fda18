package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/finance"
)

// CreateExpenseInput carries a new expense
type CreateExpenseInput struct {
	ShopID      uuid.UUID       `json:"shop_id" binding:"required"`
	Category    string          `json:"category" binding:"required,expensecategory"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateExpenseInput carries changes to an expense
type UpdateExpenseInput struct {
	Category    string          `json:"category" binding:"required,expensecategory"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ExpenseDTO is the outward shape of an expense
type ExpenseDTO struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shop_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CategoryTotalDTO is one category's share of a period's spend
type CategoryTotalDTO struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// MonthlySummaryDTO rolls up one month of spend by category
type MonthlySummaryDTO struct {
	Month      string             `json:"month"`
	Total      decimal.Decimal    `json:"total"`
	Categories []CategoryTotalDTO `json:"categories"`
}

func toExpenseDTO(e *finance.Expense) *ExpenseDTO {
	return &ExpenseDTO{
		ID:          e.ID,
		ShopID:      e.ShopID,
		Category:    string(e.Category),
		Description: e.Description,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}
