package identity

import (
	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
)

// UserSettings holds per-user presentation preferences
type UserSettings struct {
	shared.BaseEntity
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Theme          string    `gorm:"size:20;not null;default:light"`
	Currency       string    `gorm:"size:3;not null;default:KES"`
	Language       string    `gorm:"size:10;not null;default:en"`
	LowStockAlerts bool      `gorm:"not null;default:true"`
	ItemsPerPage   int       `gorm:"not null;default:10"`
}

// TableName returns the database table name
func (UserSettings) TableName() string {
	return "user_settings"
}

// NewDefaultSettings creates settings with the defaults applied to every
// new account
func NewDefaultSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		BaseEntity:     shared.NewBaseEntity(),
		UserID:         userID,
		Theme:          "light",
		Currency:       "KES",
		Language:       "en",
		LowStockAlerts: true,
		ItemsPerPage:   10,
	}
}

// SettingsPatch carries optional updates; nil fields are left unchanged
type SettingsPatch struct {
	Theme          *string
	Currency       *string
	Language       *string
	LowStockAlerts *bool
	ItemsPerPage   *int
}

// Apply merges a patch into the settings
func (s *UserSettings) Apply(patch SettingsPatch) error {
	if patch.Theme != nil {
		if *patch.Theme != "light" && *patch.Theme != "dark" {
			return shared.NewDomainError("VALIDATION_ERROR", "Theme must be light or dark")
		}
		s.Theme = *patch.Theme
	}
	if patch.Currency != nil {
		if len(*patch.Currency) != 3 {
			return shared.NewDomainError("VALIDATION_ERROR", "Currency must be a 3-letter code")
		}
		s.Currency = *patch.Currency
	}
	if patch.Language != nil {
		s.Language = *patch.Language
	}
	if patch.LowStockAlerts != nil {
		s.LowStockAlerts = *patch.LowStockAlerts
	}
	if patch.ItemsPerPage != nil {
		if *patch.ItemsPerPage < 1 || *patch.ItemsPerPage > 100 {
			return shared.NewDomainError("VALIDATION_ERROR", "Items per page must be between 1 and 100")
		}
		s.ItemsPerPage = *patch.ItemsPerPage
	}
	return nil
}
