package shop

import (
	"time"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shop"
)

// CreateShopInput carries a new shop
type CreateShopInput struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// UpdateShopInput carries changes to a shop
type UpdateShopInput struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// ShopDTO is the outward shape of a shop
type ShopDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// SummaryDTO rolls up a user's shops
type SummaryDTO struct {
	TotalShops int64  `json:"total_shops"`
	ActiveShop string `json:"active_shop,omitempty"`
}

func toShopDTO(s *shop.Shop) *ShopDTO {
	return &ShopDTO{
		ID:          s.ID,
		Name:        s.Name,
		Location:    s.Location,
		Description: s.Description,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
}
