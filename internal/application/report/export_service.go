package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/report"
	"github.com/dukadash/backend/internal/domain/shared"
)

// Renderer turns a structured report document into PDF bytes
type Renderer interface {
	RenderPDF(ctx context.Context, doc Document) ([]byte, error)
}

// Storage holds the bytes of generated and uploaded report files
type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// ExportService renders, stores and serves report documents
type ExportService struct {
	analytics *AnalyticsService
	files     report.FileRepository
	renderer  Renderer
	storage   Storage
	currency  string
}

// NewExportService creates an export service
func NewExportService(analytics *AnalyticsService, files report.FileRepository, renderer Renderer, storage Storage, currency string) *ExportService {
	if currency == "" {
		currency = "KES"
	}
	return &ExportService{
		analytics: analytics,
		files:     files,
		renderer:  renderer,
		storage:   storage,
		currency:  currency,
	}
}

func periodLabel(input GenerateInput) string {
	switch input.Period {
	case "daily":
		return "Daily report"
	case "", "weekly":
		return "Weekly report"
	case "monthly":
		return "Monthly report"
	case "yearly":
		return "Yearly report"
	case "custom":
		return fmt.Sprintf("%s to %s", input.StartDate, input.EndDate)
	default:
		return input.Period
	}
}

// Generate renders the aggregate report for the window into a PDF, stores
// it and records its metadata. The caller receives the bytes directly.
func (s *ExportService) Generate(ctx context.Context, userID uuid.UUID, input GenerateInput) (*GeneratedDocument, error) {
	rng := RangeInput{Period: input.Period, StartDate: input.StartDate, EndDate: input.EndDate}

	summary, err := s.analytics.Summary(ctx, userID, rng)
	if err != nil {
		return nil, err
	}
	daily, err := s.analytics.ReportData(ctx, userID, rng)
	if err != nil {
		return nil, err
	}
	top, err := s.analytics.TopProducts(ctx, userID, rng, 5)
	if err != nil {
		return nil, err
	}
	expenses, err := s.analytics.ExpenseBreakdown(ctx, userID, rng)
	if err != nil {
		return nil, err
	}

	doc := Document{
		Title:          "Business report",
		PeriodLabel:    periodLabel(input),
		Currency:       s.currency,
		Summary:        summary,
		Daily:          daily.Daily,
		TopProducts:    top,
		Expenses:       expenses,
		IncludeCharts:  input.IncludeCharts,
		IncludeDetails: input.IncludeDetails,
		GeneratedAt:    time.Now(),
	}

	pdf, err := s.renderer.RenderPDF(ctx, doc)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("report-%s.pdf", time.Now().Format("20060102-150405"))
	key := fmt.Sprintf("reports/%s/%s", userID, filename)
	if err := s.storage.Put(ctx, key, pdf, "application/pdf"); err != nil {
		return nil, err
	}

	file, err := report.NewReportFile(userID, filename, "application/pdf", int64(len(pdf)), key)
	if err != nil {
		return nil, err
	}
	if err := s.files.Save(ctx, file); err != nil {
		return nil, err
	}

	return &GeneratedDocument{
		Filename:    filename,
		ContentType: "application/pdf",
		Bytes:       pdf,
		FileID:      file.ID,
	}, nil
}

// Upload stores an externally produced report document
func (s *ExportService) Upload(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (*FileDTO, error) {
	if len(data) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Uploaded file is empty")
	}

	key := fmt.Sprintf("reports/%s/%s-%s", userID, uuid.New().String()[:8], filename)
	if err := s.storage.Put(ctx, key, data, contentType); err != nil {
		return nil, err
	}

	file, err := report.NewReportFile(userID, filename, contentType, int64(len(data)), key)
	if err != nil {
		return nil, err
	}
	if err := s.files.Save(ctx, file); err != nil {
		return nil, err
	}

	dto := toFileDTO(file)
	return &dto, nil
}

// ListFiles returns the caller's stored report files
func (s *ExportService) ListFiles(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]FileDTO, error) {
	files, err := s.files.FindAllForOwner(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]FileDTO, len(files))
	for i := range files {
		dtos[i] = toFileDTO(&files[i])
	}
	return dtos, nil
}

// Download returns the stored bytes of one report file
func (s *ExportService) Download(ctx context.Context, userID, fileID uuid.UUID) (*GeneratedDocument, error) {
	file, err := s.files.FindByIDForOwner(ctx, userID, fileID)
	if err != nil {
		return nil, err
	}

	data, err := s.storage.Get(ctx, file.StorageKey)
	if err != nil {
		return nil, err
	}
	return &GeneratedDocument{
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Bytes:       data,
		FileID:      file.ID,
	}, nil
}

// DeleteFile removes a report file's bytes and metadata
func (s *ExportService) DeleteFile(ctx context.Context, userID, fileID uuid.UUID) error {
	file, err := s.files.FindByIDForOwner(ctx, userID, fileID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, file.StorageKey); err != nil {
		return err
	}
	return s.files.Delete(ctx, file.ID)
}
