package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/identity"
)

// TwoFactorService manages the account's second-factor configuration
type TwoFactorService struct {
	users     identity.UserRepository
	twoFactor identity.TwoFactorRepository
	sender    CodeSender
}

// NewTwoFactorService creates a TwoFactorService
func NewTwoFactorService(users identity.UserRepository, twoFactor identity.TwoFactorRepository, sender CodeSender) *TwoFactorService {
	return &TwoFactorService{users: users, twoFactor: twoFactor, sender: sender}
}

// Status reports whether two-factor is enabled and over which channel
func (s *TwoFactorService) Status(ctx context.Context, userID uuid.UUID) (*TwoFactorStatusDTO, error) {
	tfa, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &TwoFactorStatusDTO{Enabled: tfa.Enabled, Method: string(tfa.Method)}, nil
}

// Enable turns two-factor on and sends a first code so the user can confirm
// delivery works.
func (s *TwoFactorService) Enable(ctx context.Context, userID uuid.UUID, input EnableTwoFactorInput) (*TwoFactorStatusDTO, error) {
	tfa, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := tfa.Enable(identity.TwoFactorMethod(input.Method)); err != nil {
		return nil, err
	}
	if err := s.twoFactor.Save(ctx, tfa); err != nil {
		return nil, err
	}
	if err := s.IssueCode(ctx, userID); err != nil {
		return nil, err
	}
	return &TwoFactorStatusDTO{Enabled: tfa.Enabled, Method: string(tfa.Method)}, nil
}

// Disable turns two-factor off
func (s *TwoFactorService) Disable(ctx context.Context, userID uuid.UUID) (*TwoFactorStatusDTO, error) {
	tfa, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	tfa.Disable()
	if err := s.twoFactor.Save(ctx, tfa); err != nil {
		return nil, err
	}
	return &TwoFactorStatusDTO{Enabled: tfa.Enabled, Method: string(tfa.Method)}, nil
}

// IssueCode generates a fresh verification code and delivers it
func (s *TwoFactorService) IssueCode(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	tfa, err := s.find(ctx, userID)
	if err != nil {
		return err
	}

	code, err := identity.NewVerificationCode(userID)
	if err != nil {
		return err
	}
	if err := s.twoFactor.SaveCode(ctx, code); err != nil {
		return err
	}
	return s.sender.Send(ctx, user, tfa.Method, code.Code)
}

// find loads the user's 2FA row, creating a disabled default when missing
func (s *TwoFactorService) find(ctx context.Context, userID uuid.UUID) (*identity.TwoFactorAuth, error) {
	tfa, err := s.twoFactor.FindByUser(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		tfa = identity.NewTwoFactorAuth(userID)
	}
	return tfa, nil
}
