package report

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
)

// ReportFile is the metadata row for a generated or uploaded report
// document; the bytes live in object storage under StorageKey.
type ReportFile struct {
	shared.BaseEntity
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename    string    `gorm:"size:255;not null"`
	ContentType string    `gorm:"size:100;not null"`
	SizeBytes   int64     `gorm:"not null"`
	StorageKey  string    `gorm:"size:512;not null"`
}

// TableName returns the database table name
func (ReportFile) TableName() string {
	return "report_files"
}

// NewReportFile creates a report file metadata row
func NewReportFile(userID uuid.UUID, filename, contentType string, size int64, storageKey string) (*ReportFile, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Filename is required")
	}
	if size < 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "File size cannot be negative")
	}

	return &ReportFile{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		Filename:    filename,
		ContentType: contentType,
		SizeBytes:   size,
		StorageKey:  storageKey,
	}, nil
}
