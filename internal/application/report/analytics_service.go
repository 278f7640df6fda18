package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/report"
	"github.com/dukadash/backend/internal/domain/shared"
)

// costShare models cost of goods as a fixed fraction of revenue when no
// purchase prices are tracked.
var costShare = decimal.NewFromFloat(0.6)

// AnalyticsService answers the dashboard's aggregate questions. Every
// answer is recomputed from the base tables at call time.
type AnalyticsService struct {
	aggregates report.AggregateRepository
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(aggregates report.AggregateRepository) *AnalyticsService {
	return &AnalyticsService{aggregates: aggregates}
}

// resolveQuery turns request parameters into a scoped aggregate query
func resolveQuery(userID uuid.UUID, input RangeInput) (report.Query, error) {
	q := report.Query{UserID: userID}

	if input.ShopID != "" {
		shopID, err := uuid.Parse(input.ShopID)
		if err != nil {
			return q, shared.NewDomainError("VALIDATION_ERROR", "shop_id is not a valid UUID")
		}
		q.ShopID = &shopID
	}

	switch input.Period {
	case "", "weekly":
		q.Period = report.DayRange(7)
	case "daily":
		q.Period = report.DayRange(1)
	case "monthly":
		q.Period = report.DayRange(30)
	case "yearly":
		q.Period = report.DayRange(365)
	case "custom":
		start, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return q, shared.NewDomainError("VALIDATION_ERROR", "start_date must be YYYY-MM-DD")
		}
		end, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			return q, shared.NewDomainError("VALIDATION_ERROR", "end_date must be YYYY-MM-DD")
		}
		if !end.After(start) {
			return q, shared.NewDomainError("VALIDATION_ERROR", "end_date must be after start_date")
		}
		q.Period = report.Period{Start: start, End: end.AddDate(0, 0, 1)}
	default:
		return q, shared.NewDomainErrorf("VALIDATION_ERROR", "Unknown period %q", input.Period)
	}
	return q, nil
}

// Summary returns income, spend and volume for the window
func (s *AnalyticsService) Summary(ctx context.Context, userID uuid.UUID, input RangeInput) (*report.Summary, error) {
	q, err := resolveQuery(userID, input)
	if err != nil {
		return nil, err
	}
	return s.aggregates.Summarize(ctx, q)
}

// ReportData returns the summary plus the per-day breakdown
func (s *AnalyticsService) ReportData(ctx context.Context, userID uuid.UUID, input RangeInput) (*ReportDataDTO, error) {
	q, err := resolveQuery(userID, input)
	if err != nil {
		return nil, err
	}

	summary, err := s.aggregates.Summarize(ctx, q)
	if err != nil {
		return nil, err
	}
	daily, err := s.aggregates.DailyBreakdown(ctx, q)
	if err != nil {
		return nil, err
	}
	return &ReportDataDTO{Summary: summary, Daily: daily}, nil
}

// ProfitMargin computes (income - expenses) / income as a percentage.
// With no income the margin is zero, not an error.
func (s *AnalyticsService) ProfitMargin(ctx context.Context, userID uuid.UUID, input RangeInput) (*ProfitMarginDTO, error) {
	q, err := resolveQuery(userID, input)
	if err != nil {
		return nil, err
	}

	summary, err := s.aggregates.Summarize(ctx, q)
	if err != nil {
		return nil, err
	}

	dto := &ProfitMarginDTO{
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpenses,
		NetProfit:     summary.NetProfit,
	}
	if summary.TotalIncome.IsPositive() {
		margin, _ := summary.NetProfit.
			Div(summary.TotalIncome).
			Mul(decimal.NewFromInt(100)).
			Round(2).Float64()
		dto.MarginPercent = margin
	}
	return dto, nil
}

// TopProducts ranks products by revenue over the window
func (s *AnalyticsService) TopProducts(ctx context.Context, userID uuid.UUID, input RangeInput, limit int) ([]report.TopProduct, error) {
	q, err := resolveQuery(userID, input)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}
	return s.aggregates.TopProducts(ctx, q, limit)
}

// ExpenseBreakdown groups spend by category over the window
func (s *AnalyticsService) ExpenseBreakdown(ctx context.Context, userID uuid.UUID, input RangeInput) ([]report.ExpenseSlice, error) {
	q, err := resolveQuery(userID, input)
	if err != nil {
		return nil, err
	}
	return s.aggregates.ExpenseBreakdown(ctx, q)
}

// InventoryHealth reports shelf state across the caller's stock lines
func (s *AnalyticsService) InventoryHealth(ctx context.Context, userID uuid.UUID, shopID *uuid.UUID) (*report.InventoryHealth, error) {
	return s.aggregates.InventoryHealth(ctx, userID, shopID)
}

// ProductMargins estimates per-product profitability from lifetime sales,
// modelling cost as a fixed share of revenue.
func (s *AnalyticsService) ProductMargins(ctx context.Context, userID uuid.UUID) (*report.MarginAnalysis, error) {
	sold, err := s.aggregates.ProductSales(ctx, userID)
	if err != nil {
		return nil, err
	}

	analysis := &report.MarginAnalysis{
		Products:     make([]report.ProductMargin, 0, len(sold)),
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		TotalProfit:  decimal.Zero,
	}
	for _, p := range sold {
		cost := p.Revenue.Mul(costShare).Round(2)
		profit := p.Revenue.Sub(cost)

		margin := report.ProductMargin{
			Name:          p.Name,
			QuantitySold:  p.Quantity,
			Revenue:       p.Revenue,
			EstimatedCost: cost,
			Profit:        profit,
		}
		if p.Revenue.IsPositive() {
			pct, _ := profit.Div(p.Revenue).Mul(decimal.NewFromInt(100)).Round(2).Float64()
			margin.MarginPercent = pct
		}

		analysis.Products = append(analysis.Products, margin)
		analysis.TotalRevenue = analysis.TotalRevenue.Add(p.Revenue)
		analysis.TotalCost = analysis.TotalCost.Add(cost)
		analysis.TotalProfit = analysis.TotalProfit.Add(profit)
	}
	if analysis.TotalRevenue.IsPositive() {
		pct, _ := analysis.TotalProfit.Div(analysis.TotalRevenue).Mul(decimal.NewFromInt(100)).Round(2).Float64()
		analysis.MarginPercent = pct
	}
	return analysis, nil
}
