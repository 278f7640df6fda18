package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
)

// TwoFactorMethod is the channel a verification code is delivered over
type TwoFactorMethod string

const (
	MethodEmail TwoFactorMethod = "email"
	MethodSMS   TwoFactorMethod = "sms"
)

// CodeTTL is how long a verification code stays valid
const CodeTTL = 10 * time.Minute

// TwoFactorAuth is the per-user second-factor configuration
type TwoFactorAuth struct {
	shared.BaseEntity
	UserID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Enabled bool            `gorm:"not null;default:false"`
	Method  TwoFactorMethod `gorm:"size:10;not null;default:email"`
}

// TableName returns the database table name
func (TwoFactorAuth) TableName() string {
	return "two_factor_auths"
}

// NewTwoFactorAuth creates a disabled 2FA configuration
func NewTwoFactorAuth(userID uuid.UUID) *TwoFactorAuth {
	return &TwoFactorAuth{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Enabled:    false,
		Method:     MethodEmail,
	}
}

// Enable turns 2FA on over the given method
func (t *TwoFactorAuth) Enable(method TwoFactorMethod) error {
	if method != MethodEmail && method != MethodSMS {
		return shared.NewDomainError("VALIDATION_ERROR", "2FA method must be email or sms")
	}
	t.Enabled = true
	t.Method = method
	return nil
}

// Disable turns 2FA off
func (t *TwoFactorAuth) Disable() {
	t.Enabled = false
}

// VerificationCode is a short-lived, single-use 6-digit code
type VerificationCode struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"size:6;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
}

// TableName returns the database table name
func (VerificationCode) TableName() string {
	return "verification_codes"
}

// NewVerificationCode issues a fresh 6-digit code valid for CodeTTL
func NewVerificationCode(userID uuid.UUID) (*VerificationCode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return nil, err
	}

	return &VerificationCode{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Code:       fmt.Sprintf("%06d", n.Int64()),
		ExpiresAt:  time.Now().Add(CodeTTL),
		Used:       false,
	}, nil
}

// IsExpired reports whether the code's validity window has passed
func (c *VerificationCode) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// Consume marks the code used. Expired or already-used codes are rejected.
func (c *VerificationCode) Consume(code string) error {
	if c.Used {
		return shared.NewDomainError("VALIDATION_ERROR", "Verification code has already been used")
	}
	if c.IsExpired() {
		return shared.NewDomainError("VALIDATION_ERROR", "Verification code has expired")
	}
	if c.Code != code {
		return shared.NewDomainError("VALIDATION_ERROR", "Verification code is incorrect")
	}
	c.Used = true
	return nil
}
