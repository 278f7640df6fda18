package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukadash/backend/internal/domain/report"
	"github.com/dukadash/backend/internal/domain/shared"
)

// GormReportFileRepository implements report.FileRepository
type GormReportFileRepository struct {
	db *gorm.DB
}

// NewGormReportFileRepository creates a GormReportFileRepository
func NewGormReportFileRepository(db *gorm.DB) *GormReportFileRepository {
	return &GormReportFileRepository{db: db}
}

// Save creates or updates a report file row
func (r *GormReportFileRepository) Save(ctx context.Context, file *report.ReportFile) error {
	return translateError(r.db.WithContext(ctx).Save(file).Error)
}

// FindByIDForOwner finds a report file by ID scoped to its owner
func (r *GormReportFileRepository) FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*report.ReportFile, error) {
	var file report.ReportFile
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&file).Error; err != nil {
		return nil, translateError(err)
	}
	return &file, nil
}

// FindAllForOwner returns a user's report files, newest first
func (r *GormReportFileRepository) FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]report.ReportFile, error) {
	var files []report.ReportFile
	query := r.db.WithContext(ctx).Model(&report.ReportFile{}).Where("user_id = ?", userID)
	query = applyPagination(applySort(query, filter, ReportFileSortFields), filter)

	if err := query.Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// Delete deletes a report file row
func (r *GormReportFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&report.ReportFile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ report.FileRepository = (*GormReportFileRepository)(nil)
