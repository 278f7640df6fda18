package report

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dukadash/backend/internal/domain/report"
	"github.com/dukadash/backend/internal/domain/shared"
)

// MockFileRepository mocks report.FileRepository
type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Save(ctx context.Context, file *report.ReportFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*report.ReportFile, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.ReportFile), args.Error(1)
}

func (m *MockFileRepository) FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]report.ReportFile, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.ReportFile), args.Error(1)
}

func (m *MockFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRenderer mocks Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderPDF(ctx context.Context, doc Document) ([]byte, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockStorage mocks Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockStorage) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func exportFixture() (*ExportService, *MockAggregateRepository, *MockFileRepository, *MockRenderer, *MockStorage) {
	aggregates := new(MockAggregateRepository)
	files := new(MockFileRepository)
	renderer := new(MockRenderer)
	storage := new(MockStorage)
	analytics := NewAnalyticsService(aggregates)
	return NewExportService(analytics, files, renderer, storage, "KES"), aggregates, files, renderer, storage
}

func TestGenerate(t *testing.T) {
	service, aggregates, files, renderer, storage := exportFixture()
	userID := uuid.New()
	pdf := []byte("%PDF-1.7 fake")

	aggregates.On("Summarize", mock.Anything, mock.Anything).Return(&report.Summary{
		TotalIncome: decimal.NewFromInt(1000),
	}, nil)
	aggregates.On("DailyBreakdown", mock.Anything, mock.Anything).Return([]report.DailyEntry{}, nil)
	aggregates.On("TopProducts", mock.Anything, mock.Anything, 5).Return([]report.TopProduct{}, nil)
	aggregates.On("ExpenseBreakdown", mock.Anything, mock.Anything).Return([]report.ExpenseSlice{}, nil)

	renderer.On("RenderPDF", mock.Anything, mock.MatchedBy(func(doc Document) bool {
		return doc.Currency == "KES" && doc.PeriodLabel == "Weekly report"
	})).Return(pdf, nil)
	storage.On("Put", mock.Anything, mock.Anything, pdf, "application/pdf").Return(nil)
	files.On("Save", mock.Anything, mock.MatchedBy(func(f *report.ReportFile) bool {
		return f.UserID == userID && f.SizeBytes == int64(len(pdf)) && f.ContentType == "application/pdf"
	})).Return(nil)

	doc, err := service.Generate(context.Background(), userID, GenerateInput{Period: "weekly"})
	require.NoError(t, err)

	assert.Equal(t, pdf, doc.Bytes)
	assert.Contains(t, doc.Filename, ".pdf")
	files.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestDeleteFile(t *testing.T) {
	service, _, files, _, storage := exportFixture()
	userID := uuid.New()

	file, err := report.NewReportFile(userID, "report.pdf", "application/pdf", 10, "reports/key")
	require.NoError(t, err)

	files.On("FindByIDForOwner", mock.Anything, userID, file.ID).Return(file, nil)
	storage.On("Delete", mock.Anything, "reports/key").Return(nil)
	files.On("Delete", mock.Anything, file.ID).Return(nil)

	require.NoError(t, service.DeleteFile(context.Background(), userID, file.ID))
	storage.AssertExpectations(t)
	files.AssertExpectations(t)
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	service, _, files, _, storage := exportFixture()

	_, err := service.Upload(context.Background(), uuid.New(), "x.pdf", "application/pdf", nil)
	require.Error(t, err)
	storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
