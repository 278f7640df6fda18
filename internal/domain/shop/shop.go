package shop

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
)

// DefaultShopName is the shop provisioned for a new user
const DefaultShopName = "Main Shop"

// Shop is the tenant boundary of the dashboard. Every stock line, sale
// and expense belongs to exactly one shop, and a user has at most one
// active shop at a time.
type Shop struct {
	shared.OwnedAggregateRoot
	// Uniqueness of (user_id, name) is enforced by the schema migration.
	Name        string `gorm:"size:255;not null;index"`
	Location    string `gorm:"size:255"`
	Description string `gorm:"size:500"`
	IsActive    bool   `gorm:"not null;default:false;index"`
}

// TableName returns the database table name
func (Shop) TableName() string {
	return "shops"
}

// NewShop creates a shop for a user
func NewShop(userID uuid.UUID, name, location, description string) (*Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Shop name is required")
	}

	return &Shop{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Name:               name,
		Location:           location,
		Description:        description,
		IsActive:           false,
	}, nil
}

// NewDefaultShop creates the bootstrap shop for a new user. It starts
// active so the first recorded sale has a home.
func NewDefaultShop(userID uuid.UUID) *Shop {
	return &Shop{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Name:               DefaultShopName,
		Description:        "Default shop",
		IsActive:           true,
	}
}

// UpdateDetails changes the descriptive fields of the shop
func (s *Shop) UpdateDetails(name, location, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Shop name is required")
	}

	s.Name = name
	s.Location = location
	s.Description = description
	return nil
}
