package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/identity"
)

// SettingsService reads and updates per-user preferences
type SettingsService struct {
	settings identity.SettingsRepository
}

// NewSettingsService creates a SettingsService
func NewSettingsService(settings identity.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the user's settings, provisioning defaults for accounts that
// predate the settings table.
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (*SettingsDTO, error) {
	current, err := s.settings.FindByUser(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		current = identity.NewDefaultSettings(userID)
		if err := s.settings.Save(ctx, current); err != nil {
			return nil, err
		}
	}
	dto := toSettingsDTO(current)
	return &dto, nil
}

// Update merges the provided fields into the user's settings
func (s *SettingsService) Update(ctx context.Context, userID uuid.UUID, input UpdateSettingsInput) (*SettingsDTO, error) {
	current, err := s.settings.FindByUser(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		current = identity.NewDefaultSettings(userID)
	}

	patch := identity.SettingsPatch{
		Theme:          input.Theme,
		Currency:       input.Currency,
		Language:       input.Language,
		LowStockAlerts: input.LowStockAlerts,
		ItemsPerPage:   input.ItemsPerPage,
	}
	if err := current.Apply(patch); err != nil {
		return nil, err
	}
	if err := s.settings.Save(ctx, current); err != nil {
		return nil, err
	}

	dto := toSettingsDTO(current)
	return &dto, nil
}
