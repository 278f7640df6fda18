package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dukadash/backend/internal/domain/identity"
)

// GormSettingsRepository implements identity.SettingsRepository
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// FindByUser returns a user's settings row
func (r *GormSettingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*identity.UserSettings, error) {
	var settings identity.UserSettings
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settings).Error; err != nil {
		return nil, translateError(err)
	}
	return &settings, nil
}

// Save upserts a user's settings. The user_id unique index resolves the
// race when two requests provision defaults at once.
func (r *GormSettingsRepository) Save(ctx context.Context, settings *identity.UserSettings) error {
	return translateError(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"theme", "currency", "language", "low_stock_alerts", "items_per_page", "updated_at",
			}),
		}).
		Create(settings).Error)
}

var _ identity.SettingsRepository = (*GormSettingsRepository)(nil)
