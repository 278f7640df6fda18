package finance

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/finance"
	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
)

// ExpenseService manages expense records for a shop owner
type ExpenseService struct {
	expenses finance.ExpenseRepository
	shops    shop.ShopRepository
}

// NewExpenseService creates an expense service
func NewExpenseService(expenses finance.ExpenseRepository, shops shop.ShopRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses, shops: shops}
}

// CreateExpense records money out against one of the caller's shops
func (s *ExpenseService) CreateExpense(ctx context.Context, userID uuid.UUID, input CreateExpenseInput) (*ExpenseDTO, error) {
	if _, err := s.shops.FindByIDForOwner(ctx, userID, input.ShopID); err != nil {
		return nil, err
	}

	expense, err := finance.NewExpense(userID, input.ShopID,
		finance.ExpenseCategory(input.Category), input.Description, input.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseDTO(expense), nil
}

// ListExpenses returns the caller's expenses, optionally scoped to a shop
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID, filter shared.Filter) (*shared.Paginated[ExpenseDTO], error) {
	var (
		items []finance.Expense
		err   error
	)
	if shopID != nil {
		items, err = s.expenses.FindByShop(ctx, userID, *shopID, filter)
	} else {
		items, err = s.expenses.FindAllForOwner(ctx, userID, filter)
	}
	if err != nil {
		return nil, err
	}

	countFilter := filter
	if shopID != nil {
		countFilter = countFilter.WithFilter("shop_id", *shopID)
	}
	total, err := s.expenses.CountForOwner(ctx, userID, countFilter)
	if err != nil {
		return nil, err
	}

	dtos := make([]ExpenseDTO, len(items))
	for i := range items {
		dtos[i] = *toExpenseDTO(&items[i])
	}
	result := shared.NewPaginated(dtos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// GetExpense returns one expense owned by the caller
func (s *ExpenseService) GetExpense(ctx context.Context, userID, expenseID uuid.UUID) (*ExpenseDTO, error) {
	expense, err := s.expenses.FindByIDForOwner(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}
	return toExpenseDTO(expense), nil
}

// UpdateExpense changes an expense record
func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, expenseID uuid.UUID, input UpdateExpenseInput) (*ExpenseDTO, error) {
	expense, err := s.expenses.FindByIDForOwner(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if err := expense.Update(finance.ExpenseCategory(input.Category), input.Description, input.Amount); err != nil {
		return nil, err
	}
	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseDTO(expense), nil
}

// DeleteExpense removes an expense owned by the caller
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) error {
	expense, err := s.expenses.FindByIDForOwner(ctx, userID, expenseID)
	if err != nil {
		return err
	}
	return s.expenses.Delete(ctx, expense.ID)
}

// MonthlySummary rolls up the current month's spend by category,
// largest first
func (s *ExpenseService) MonthlySummary(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID) (*MonthlySummaryDTO, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)

	items, err := s.expenses.FindInRange(ctx, userID, shopID, start, end)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		total decimal.Decimal
		count int
	}
	buckets := make(map[string]*bucket)
	total := decimal.Zero
	for i := range items {
		key := string(items[i].Category)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[key] = b
		}
		b.total = b.total.Add(items[i].Amount)
		b.count++
		total = total.Add(items[i].Amount)
	}

	summary := &MonthlySummaryDTO{
		Month:      start.Format("2006-01"),
		Total:      total,
		Categories: make([]CategoryTotalDTO, 0, len(buckets)),
	}
	for category, b := range buckets {
		summary.Categories = append(summary.Categories, CategoryTotalDTO{
			Category: category,
			Total:    b.total,
			Count:    b.count,
		})
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Total.GreaterThan(summary.Categories[j].Total)
	})
	return summary, nil
}

// Categories lists the valid expense categories
func (s *ExpenseService) Categories() []string {
	categories := finance.Categories()
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}
