package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/identity"
	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
	"github.com/dukadash/backend/internal/infrastructure/auth"
)

// CodeSender delivers a verification code to the user over the configured
// channel.
type CodeSender interface {
	Send(ctx context.Context, user *identity.User, method identity.TwoFactorMethod, code string) error
}

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	users     identity.UserRepository
	settings  identity.SettingsRepository
	twoFactor identity.TwoFactorRepository
	shops     shop.ShopRepository
	tokens    *auth.JWTService
	blacklist auth.TokenBlacklist
	sender    CodeSender
}

// NewAuthService creates an AuthService
func NewAuthService(
	users identity.UserRepository,
	settings identity.SettingsRepository,
	twoFactor identity.TwoFactorRepository,
	shops shop.ShopRepository,
	tokens *auth.JWTService,
	blacklist auth.TokenBlacklist,
	sender CodeSender,
) *AuthService {
	return &AuthService{
		users:     users,
		settings:  settings,
		twoFactor: twoFactor,
		shops:     shops,
		tokens:    tokens,
		blacklist: blacklist,
		sender:    sender,
	}
}

// Register creates a new account with default settings and a default shop,
// and signs the user in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResultDTO, error) {
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	} else if !isNotFound(err) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	} else if !isNotFound(err) {
		return nil, err
	}

	user, err := identity.NewUser(input.Username, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	user.FirstName = input.FirstName
	user.LastName = input.LastName

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.settings.Save(ctx, identity.NewDefaultSettings(user.ID)); err != nil {
		return nil, err
	}
	if _, err := s.shops.EnsureDefault(ctx, user.ID); err != nil {
		return nil, err
	}

	pair, err := s.tokens.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResultDTO{User: toUserDTO(user), Tokens: pair}, nil
}

// Login verifies credentials. Accounts with two-factor enabled get a
// verification code instead of tokens; VerifyTwoFactor completes the login.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResultDTO, error) {
	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
		}
		return nil, err
	}
	if !user.CheckPassword(input.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("FORBIDDEN", "Account is deactivated")
	}

	tfa, err := s.twoFactor.FindByUser(ctx, user.ID)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if tfa != nil && tfa.Enabled {
		code, err := identity.NewVerificationCode(user.ID)
		if err != nil {
			return nil, err
		}
		if err := s.twoFactor.SaveCode(ctx, code); err != nil {
			return nil, err
		}
		if err := s.sender.Send(ctx, user, tfa.Method, code.Code); err != nil {
			return nil, err
		}
		return &LoginResultDTO{
			RequiresTwoFactor: true,
			Method:            string(tfa.Method),
			UserID:            user.ID.String(),
		}, nil
	}

	pair, err := s.tokens.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	dto := toUserDTO(user)
	return &LoginResultDTO{User: &dto, Tokens: pair}, nil
}

// VerifyTwoFactor consumes a verification code and completes the login
func (s *AuthService) VerifyTwoFactor(ctx context.Context, input VerifyCodeInput) (*AuthResultDTO, error) {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid user id")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	code, err := s.twoFactor.FindLatestCode(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "No verification code pending")
		}
		return nil, err
	}
	if err := code.Consume(input.Code); err != nil {
		return nil, err
	}
	if err := s.twoFactor.UpdateCode(ctx, code); err != nil {
		return nil, err
	}

	pair, err := s.tokens.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResultDTO{User: toUserDTO(user), Tokens: pair}, nil
}

// Refresh rotates a token pair. The spent refresh token is blacklisted so
// it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Refresh token has been revoked")
	}

	pair, err := s.tokens.RefreshTokenPair(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrMaxRefreshExceeded) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Session expired, please log in again")
		}
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes the presented access token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, ttl)
}

// CurrentUser returns the authenticated user's profile
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := toUserDTO(user)
	return &dto, nil
}

// UpdateProfile applies profile changes to the authenticated user
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.users.FindByEmail(ctx, *input.Email); err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
		} else if !isNotFound(err) {
			return nil, err
		}
		user.Email = *input.Email
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	dto := toUserDTO(user)
	return &dto, nil
}

// ChangePassword rotates the user's password after verifying the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.ChangePassword(input.CurrentPassword, input.NewPassword); err != nil {
		return err
	}
	return s.users.Save(ctx, user)
}

func isNotFound(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND"
}
