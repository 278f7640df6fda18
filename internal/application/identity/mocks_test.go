package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dukadash/backend/internal/domain/identity"
	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
)

// MockUserRepository mocks identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockSettingsRepository mocks identity.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*identity.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *identity.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockTwoFactorRepository mocks identity.TwoFactorRepository
type MockTwoFactorRepository struct {
	mock.Mock
}

func (m *MockTwoFactorRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*identity.TwoFactorAuth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.TwoFactorAuth), args.Error(1)
}

func (m *MockTwoFactorRepository) Save(ctx context.Context, tfa *identity.TwoFactorAuth) error {
	args := m.Called(ctx, tfa)
	return args.Error(0)
}

func (m *MockTwoFactorRepository) SaveCode(ctx context.Context, code *identity.VerificationCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockTwoFactorRepository) FindLatestCode(ctx context.Context, userID uuid.UUID) (*identity.VerificationCode, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.VerificationCode), args.Error(1)
}

func (m *MockTwoFactorRepository) UpdateCode(ctx context.Context, code *identity.VerificationCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockShopRepository mocks shop.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) Save(ctx context.Context, entity *shop.Shop) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShopRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopRepository) FindByIDForOwner(ctx context.Context, userID, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAllForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) CountForOwner(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopRepository) FindActive(ctx context.Context, userID uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) Activate(ctx context.Context, userID, shopID uuid.UUID) error {
	args := m.Called(ctx, userID, shopID)
	return args.Error(0)
}

func (m *MockShopRepository) EnsureDefault(ctx context.Context, userID uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

// MockCodeSender mocks CodeSender
type MockCodeSender struct {
	mock.Mock
}

func (m *MockCodeSender) Send(ctx context.Context, user *identity.User, method identity.TwoFactorMethod, code string) error {
	args := m.Called(ctx, user, method, code)
	return args.Error(0)
}
