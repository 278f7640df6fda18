package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dukadash/backend/internal/application/identity"
)

// SecurityHandler serves two-factor configuration routes
type SecurityHandler struct {
	BaseHandler
	twoFactorService *identity.TwoFactorService
}

// NewSecurityHandler creates a SecurityHandler
func NewSecurityHandler(twoFactorService *identity.TwoFactorService) *SecurityHandler {
	return &SecurityHandler{twoFactorService: twoFactorService}
}

// RegisterRoutes registers security routes
func (h *SecurityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	security := rg.Group("/security")
	{
		security.GET("/2fa", h.Status)
		security.POST("/2fa/enable", h.Enable)
		security.POST("/2fa/disable", h.Disable)
		security.POST("/2fa/resend", h.ResendCode)
	}
}

// Status reports whether two-factor is enabled and by which method
func (h *SecurityHandler) Status(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	status, err := h.twoFactorService.Status(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, status)
}

// Enable turns on two-factor with the chosen delivery method
func (h *SecurityHandler) Enable(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input identity.EnableTwoFactorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status, err := h.twoFactorService.Enable(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, status)
}

// Disable turns off two-factor
func (h *SecurityHandler) Disable(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	status, err := h.twoFactorService.Disable(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, status)
}

// ResendCode sends a fresh verification code
func (h *SecurityHandler) ResendCode(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.twoFactorService.IssueCode(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Verification code sent"})
}
