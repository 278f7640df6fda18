package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dukadash/backend/internal/domain/shared"
	"github.com/dukadash/backend/internal/domain/shop"
)

func setupShopTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&shop.Shop{})
	require.NoError(t, err)

	return db
}

func TestGormShopRepository_EnsureDefault(t *testing.T) {
	t.Run("provisions an active default shop for a new user", func(t *testing.T) {
		repo := NewGormShopRepository(setupShopTestDB(t))
		userID := uuid.New()

		s, err := repo.EnsureDefault(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, shop.DefaultShopName, s.Name)
		assert.Equal(t, userID, s.UserID)
		assert.True(t, s.IsActive)
	})

	t.Run("is idempotent", func(t *testing.T) {
		repo := NewGormShopRepository(setupShopTestDB(t))
		userID := uuid.New()

		first, err := repo.EnsureDefault(context.Background(), userID)
		require.NoError(t, err)

		second, err := repo.EnsureDefault(context.Background(), userID)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)

		count, err := repo.CountForOwner(context.Background(), userID, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("returns the active shop without creating a default", func(t *testing.T) {
		repo := NewGormShopRepository(setupShopTestDB(t))
		userID := uuid.New()

		kiosk, err := shop.NewShop(userID, "Kiosk", "Nakuru", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), kiosk))
		require.NoError(t, repo.Activate(context.Background(), userID, kiosk.ID))

		s, err := repo.EnsureDefault(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, kiosk.ID, s.ID)

		count, err := repo.CountForOwner(context.Background(), userID, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("activates an existing default when no shop is active", func(t *testing.T) {
		repo := NewGormShopRepository(setupShopTestDB(t))
		userID := uuid.New()

		dormant := shop.NewDefaultShop(userID)
		dormant.IsActive = false
		require.NoError(t, repo.Save(context.Background(), dormant))

		s, err := repo.EnsureDefault(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, dormant.ID, s.ID)
		assert.True(t, s.IsActive)

		reloaded, err := repo.FindActive(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, dormant.ID, reloaded.ID)
	})

	t.Run("keeps users isolated", func(t *testing.T) {
		repo := NewGormShopRepository(setupShopTestDB(t))

		alice, err := repo.EnsureDefault(context.Background(), uuid.New())
		require.NoError(t, err)
		bob, err := repo.EnsureDefault(context.Background(), uuid.New())
		require.NoError(t, err)

		assert.NotEqual(t, alice.ID, bob.ID)
		assert.True(t, alice.IsActive)
		assert.True(t, bob.IsActive)
	})
}

func TestGormShopRepository_Activate(t *testing.T) {
	t.Run("makes the chosen shop the only active one", func(t *testing.T) {
		repo := NewGormShopRepository(setupShopTestDB(t))
		userID := uuid.New()

		first, err := repo.EnsureDefault(context.Background(), userID)
		require.NoError(t, err)

		branch, err := shop.NewShop(userID, "Branch", "Eldoret", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), branch))

		require.NoError(t, repo.Activate(context.Background(), userID, branch.ID))

		active, err := repo.FindActive(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, branch.ID, active.ID)

		old, err := repo.FindByIDForOwner(context.Background(), userID, first.ID)
		require.NoError(t, err)
		assert.False(t, old.IsActive)
	})

	t.Run("returns ErrNotFound for an unknown shop", func(t *testing.T) {
		repo := NewGormShopRepository(setupShopTestDB(t))
		userID := uuid.New()

		_, err := repo.EnsureDefault(context.Background(), userID)
		require.NoError(t, err)

		err = repo.Activate(context.Background(), userID, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("cannot activate another user's shop", func(t *testing.T) {
		repo := NewGormShopRepository(setupShopTestDB(t))

		owner := uuid.New()
		s, err := repo.EnsureDefault(context.Background(), owner)
		require.NoError(t, err)

		err = repo.Activate(context.Background(), uuid.New(), s.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormShopRepository_FindActive(t *testing.T) {
	t.Run("returns ErrNotFound when nothing is active", func(t *testing.T) {
		repo := NewGormShopRepository(setupShopTestDB(t))

		s, err := repo.FindActive(context.Background(), uuid.New())

		assert.Nil(t, s)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
