package shop

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
)

// ShopService manages a user's shops
type ShopService struct {
	shops shop.ShopRepository
}

// NewShopService creates a shop service
func NewShopService(shops shop.ShopRepository) *ShopService {
	return &ShopService{shops: shops}
}

// CreateShop adds a shop for the caller. The first shop a user creates
// becomes active automatically.
func (s *ShopService) CreateShop(ctx context.Context, userID uuid.UUID, input CreateShopInput) (*ShopDTO, error) {
	newShop, err := shop.NewShop(userID, input.Name, input.Location, input.Description)
	if err != nil {
		return nil, err
	}

	existing, err := s.shops.CountForOwner(ctx, userID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	newShop.IsActive = existing == 0

	if err := s.shops.Save(ctx, newShop); err != nil {
		return nil, err
	}
	return toShopDTO(newShop), nil
}

// ListShops returns the caller's shops
func (s *ShopService) ListShops(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[ShopDTO], error) {
	shops, err := s.shops.FindAllForOwner(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.shops.CountForOwner(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]ShopDTO, len(shops))
	for i := range shops {
		dtos[i] = *toShopDTO(&shops[i])
	}
	result := shared.NewPaginated(dtos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// GetShop returns one shop owned by the caller
func (s *ShopService) GetShop(ctx context.Context, userID, shopID uuid.UUID) (*ShopDTO, error) {
	found, err := s.shops.FindByIDForOwner(ctx, userID, shopID)
	if err != nil {
		return nil, err
	}
	return toShopDTO(found), nil
}

// UpdateShop changes the descriptive fields of a shop
func (s *ShopService) UpdateShop(ctx context.Context, userID, shopID uuid.UUID, input UpdateShopInput) (*ShopDTO, error) {
	found, err := s.shops.FindByIDForOwner(ctx, userID, shopID)
	if err != nil {
		return nil, err
	}

	if err := found.UpdateDetails(input.Name, input.Location, input.Description); err != nil {
		return nil, err
	}
	if err := s.shops.Save(ctx, found); err != nil {
		return nil, err
	}
	return toShopDTO(found), nil
}

// DeleteShop removes a shop. The active shop cannot be deleted while
// another could take its place unnoticed, so deletion of the active shop
// is refused.
func (s *ShopService) DeleteShop(ctx context.Context, userID, shopID uuid.UUID) error {
	found, err := s.shops.FindByIDForOwner(ctx, userID, shopID)
	if err != nil {
		return err
	}
	if found.IsActive {
		return shared.NewDomainError("VALIDATION_ERROR", "Cannot delete the active shop; activate another shop first")
	}
	return s.shops.Delete(ctx, found.ID)
}

// Activate makes the given shop the caller's active one. The swap is a
// single transaction in the repository.
func (s *ShopService) Activate(ctx context.Context, userID, shopID uuid.UUID) (*ShopDTO, error) {
	if _, err := s.shops.FindByIDForOwner(ctx, userID, shopID); err != nil {
		return nil, err
	}
	if err := s.shops.Activate(ctx, userID, shopID); err != nil {
		return nil, err
	}
	return s.GetShop(ctx, userID, shopID)
}

// ActiveShop returns the caller's active shop, provisioning the default
// shop for users who have none.
func (s *ShopService) ActiveShop(ctx context.Context, userID uuid.UUID) (*ShopDTO, error) {
	active, err := s.shops.FindActive(ctx, userID)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND" {
			active, err = s.shops.EnsureDefault(ctx, userID)
		}
		if err != nil {
			return nil, err
		}
	}
	return toShopDTO(active), nil
}

// Summary rolls up the caller's shops
func (s *ShopService) Summary(ctx context.Context, userID uuid.UUID) (*SummaryDTO, error) {
	total, err := s.shops.CountForOwner(ctx, userID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	summary := &SummaryDTO{TotalShops: total}
	active, err := s.shops.FindActive(ctx, userID)
	if err == nil {
		summary.ActiveShop = active.Name
	}
	return summary, nil
}
