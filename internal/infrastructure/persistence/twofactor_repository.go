package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dukadash/backend/internal/domain/identity"
)

// GormTwoFactorRepository implements identity.TwoFactorRepository
type GormTwoFactorRepository struct {
	db *gorm.DB
}

// NewGormTwoFactorRepository creates a GormTwoFactorRepository
func NewGormTwoFactorRepository(db *gorm.DB) *GormTwoFactorRepository {
	return &GormTwoFactorRepository{db: db}
}

// FindByUser returns a user's 2FA configuration
func (r *GormTwoFactorRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*identity.TwoFactorAuth, error) {
	var tfa identity.TwoFactorAuth
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&tfa).Error; err != nil {
		return nil, translateError(err)
	}
	return &tfa, nil
}

// Save upserts a user's 2FA configuration
func (r *GormTwoFactorRepository) Save(ctx context.Context, tfa *identity.TwoFactorAuth) error {
	return translateError(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "method", "updated_at"}),
		}).
		Create(tfa).Error)
}

// SaveCode stores a freshly issued verification code
func (r *GormTwoFactorRepository) SaveCode(ctx context.Context, code *identity.VerificationCode) error {
	return translateError(r.db.WithContext(ctx).Create(code).Error)
}

// FindLatestCode returns the most recently issued unused code for a user
func (r *GormTwoFactorRepository) FindLatestCode(ctx context.Context, userID uuid.UUID) (*identity.VerificationCode, error) {
	var code identity.VerificationCode
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND used = ?", userID, false).
		Order("created_at DESC").
		First(&code).Error; err != nil {
		return nil, translateError(err)
	}
	return &code, nil
}

// UpdateCode persists a consumed code
func (r *GormTwoFactorRepository) UpdateCode(ctx context.Context, code *identity.VerificationCode) error {
	return translateError(r.db.WithContext(ctx).Save(code).Error)
}

var _ identity.TwoFactorRepository = (*GormTwoFactorRepository)(nil)
