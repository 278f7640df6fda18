package identity

import (
	"time"

	"github.com/dukadash/backend/internal/domain/identity"
	"github.com/dukadash/backend/internal/infrastructure/auth"
)

// RegisterInput carries a new account registration
type RegisterInput struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
}

// LoginInput carries login credentials
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyCodeInput completes a two-factor login
type VerifyCodeInput struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Code   string `json:"code" binding:"required,len=6"`
}

// RefreshInput carries a refresh token
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileInput carries optional profile changes
type UpdateProfileInput struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// ChangePasswordInput carries a password change request
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// EnableTwoFactorInput selects the delivery method
type EnableTwoFactorInput struct {
	Method string `json:"method" binding:"required,oneof=email sms"`
}

// UpdateSettingsInput carries optional settings changes; omitted fields
// keep their current values
type UpdateSettingsInput struct {
	Theme          *string `json:"theme" binding:"omitempty,oneof=light dark"`
	Currency       *string `json:"currency" binding:"omitempty,len=3"`
	Language       *string `json:"language" binding:"omitempty,max=10"`
	LowStockAlerts *bool   `json:"low_stock_alerts"`
	ItemsPerPage   *int    `json:"items_per_page" binding:"omitempty,min=1,max=100"`
}

// UserDTO is the API representation of a user
type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResultDTO is a completed authentication: the user plus a token pair
type AuthResultDTO struct {
	User   UserDTO         `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// LoginResultDTO is the outcome of a login attempt. When the account has
// two-factor enabled, Tokens is nil and the caller must verify a code.
type LoginResultDTO struct {
	RequiresTwoFactor bool            `json:"requires_2fa"`
	Method            string          `json:"method,omitempty"`
	UserID            string          `json:"user_id,omitempty"`
	User              *UserDTO        `json:"user,omitempty"`
	Tokens            *auth.TokenPair `json:"tokens,omitempty"`
}

// SettingsDTO is the API representation of user settings
type SettingsDTO struct {
	Theme          string `json:"theme"`
	Currency       string `json:"currency"`
	Language       string `json:"language"`
	LowStockAlerts bool   `json:"low_stock_alerts"`
	ItemsPerPage   int    `json:"items_per_page"`
}

// TwoFactorStatusDTO reports the account's second-factor configuration
type TwoFactorStatusDTO struct {
	Enabled bool   `json:"enabled"`
	Method  string `json:"method"`
}

func toUserDTO(u *identity.User) UserDTO {
	return UserDTO{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func toSettingsDTO(s *identity.UserSettings) SettingsDTO {
	return SettingsDTO{
		Theme:          s.Theme,
		Currency:       s.Currency,
		Language:       s.Language,
		LowStockAlerts: s.LowStockAlerts,
		ItemsPerPage:   s.ItemsPerPage,
	}
}
