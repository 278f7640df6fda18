package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukadash/backend/internal/domain/report"
)

// RangeInput selects a reporting window from query parameters
type RangeInput struct {
	Period    string `form:"period"` // daily | weekly | monthly | yearly | custom
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	ShopID    string `form:"shop_id"`
}

// ProfitMarginDTO is the income/expense ratio for a window
type ProfitMarginDTO struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	MarginPercent float64         `json:"margin_percent"`
}

// ReportDataDTO is the combined payload the dashboard charts consume
type ReportDataDTO struct {
	Summary *report.Summary     `json:"summary"`
	Daily   []report.DailyEntry `json:"daily"`
}

// GenerateInput selects what goes into an exported document
type GenerateInput struct {
	Period         string `json:"period"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	IncludeCharts  bool   `json:"include_charts"`
	IncludeDetails bool   `json:"include_details"`
}

// GeneratedDocument is a rendered report ready for download
type GeneratedDocument struct {
	Filename    string
	ContentType string
	Bytes       []byte
	FileID      uuid.UUID
}

// FileDTO is the outward shape of a stored report file
type FileDTO struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

// Document is the structured content handed to the renderer
type Document struct {
	Title          string
	PeriodLabel    string
	Currency       string
	Summary        *report.Summary
	Daily          []report.DailyEntry
	TopProducts    []report.TopProduct
	Expenses       []report.ExpenseSlice
	IncludeCharts  bool
	IncludeDetails bool
	GeneratedAt    time.Time
}

func toFileDTO(f *report.ReportFile) FileDTO {
	return FileDTO{
		ID:          f.ID,
		Filename:    f.Filename,
		ContentType: f.ContentType,
		SizeBytes:   f.SizeBytes,
		CreatedAt:   f.CreatedAt,
	}
}
