package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dukadash/backend/internal/application/identity"
	"github.com/dukadash/backend/internal/interfaces/http/middleware"
)

// AuthHandler serves registration, login and account routes
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	authLimit   gin.HandlerFunc
}

// NewAuthHandler creates an AuthHandler. limiter throttles the
// credential endpoints per client IP; pass nil to disable.
func NewAuthHandler(authService *identity.AuthService, limiter *middleware.RateLimiter) *AuthHandler {
	h := &AuthHandler{authService: authService}
	if limiter != nil {
		h.authLimit = middleware.AuthRateLimit(limiter)
	}
	return h
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	guarded := auth.Group("")
	if h.authLimit != nil {
		guarded.Use(h.authLimit)
	}
	guarded.POST("/register", h.Register)
	guarded.POST("/login", h.Login)
	guarded.POST("/verify-2fa", h.VerifyTwoFactor)
	guarded.POST("/refresh", h.Refresh)

	auth.POST("/logout", h.Logout)
	auth.GET("/me", h.Me)
	auth.PUT("/me", h.UpdateProfile)
	auth.POST("/change-password", h.ChangePassword)
}

// Register creates a new account
func (h *AuthHandler) Register(c *gin.Context) {
	var input identity.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Login authenticates with username and password. Accounts with 2FA
// enabled get a verification challenge instead of tokens.
func (h *AuthHandler) Login(c *gin.Context) {
	var input identity.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// VerifyTwoFactor completes a 2FA login with the emailed/texted code
func (h *AuthHandler) VerifyTwoFactor(c *gin.Context) {
	var input identity.VerifyCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.VerifyTwoFactor(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input identity.RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pair)
}

// Logout revokes the current access token
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Logged out"})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// UpdateProfile changes the user's profile fields
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input identity.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// ChangePassword changes the user's password after checking the
// current one
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input identity.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, input); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password changed"})
}
