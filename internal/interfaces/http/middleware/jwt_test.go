package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukadash/backend/internal/infrastructure/auth"
	"github.com/dukadash/backend/internal/infrastructure/config"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-that-is-long-enough!",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "dukadash-test",
		MaxRefreshCount:        5,
	})
}

func newTestRouter(cfg JWTMiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(cfg))
	r.GET("/api/v1/stocks", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c)})
	})
	r.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	jwtService := newTestJWTService()
	userID := uuid.New()

	t.Run("accepts a valid bearer token", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair(userID, "amina")
		require.NoError(t, err)

		r := newTestRouter(DefaultJWTConfig(jwtService))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stocks", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		r := newTestRouter(DefaultJWTConfig(jwtService))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stocks", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		r := newTestRouter(DefaultJWTConfig(jwtService))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stocks", nil)
		req.Header.Set(AuthHeaderKey, "Token abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a refresh token on an access route", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair(userID, "amina")
		require.NoError(t, err)

		r := newTestRouter(DefaultJWTConfig(jwtService))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stocks", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+pair.RefreshToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("skips configured paths", func(t *testing.T) {
		r := newTestRouter(DefaultJWTConfig(jwtService))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects blacklisted tokens", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair(userID, "amina")
		require.NoError(t, err)

		claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)

		blacklist := auth.NewInMemoryTokenBlacklist()
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

		cfg := DefaultJWTConfig(jwtService)
		cfg.Blacklist = blacklist

		r := newTestRouter(cfg)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stocks", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "revoked")
	})
}
