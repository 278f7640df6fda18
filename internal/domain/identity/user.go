package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukadash/backend/internal/domain/shared"
)

// User is a shop owner account
type User struct {
	shared.BaseAggregateRoot
	Username     string `gorm:"size:150;not null;uniqueIndex"`
	Email        string `gorm:"size:254;not null;uniqueIndex"`
	FirstName    string `gorm:"size:150"`
	LastName     string `gorm:"size:150"`
	PasswordHash string `gorm:"size:128;not null"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the database table name
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with a bcrypt-hashed password
func NewUser(username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Username is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "A valid email address is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		Email:             email,
		PasswordHash:      string(hash),
		IsActive:          true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash after verifying the current password
func (u *User) ChangePassword(current, next string) error {
	if !u.CheckPassword(current) {
		return shared.NewDomainError("UNAUTHORIZED", "Current password is incorrect")
	}
	if len(next) < 8 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// FullName joins first and last name, falling back to the username
func (u *User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}
