package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository persists the User aggregate
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
}

// SettingsRepository persists per-user settings
type SettingsRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*UserSettings, error)
	Save(ctx context.Context, settings *UserSettings) error
}

// TwoFactorRepository persists 2FA configuration and verification codes
type TwoFactorRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*TwoFactorAuth, error)
	Save(ctx context.Context, tfa *TwoFactorAuth) error

	SaveCode(ctx context.Context, code *VerificationCode) error
	// FindLatestCode returns the most recently issued unused code for a user
	FindLatestCode(ctx context.Context, userID uuid.UUID) (*VerificationCode, error)
	UpdateCode(ctx context.Context, code *VerificationCode) error
}
