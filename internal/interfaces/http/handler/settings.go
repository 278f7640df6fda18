package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dukadash/backend/internal/application/identity"
)

// SettingsHandler serves user preference routes
type SettingsHandler struct {
	BaseHandler
	settingsService *identity.SettingsService
}

// NewSettingsHandler creates a SettingsHandler
func NewSettingsHandler(settingsService *identity.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/settings", h.Get)
		users.PUT("/settings", h.Update)
	}
}

// Get returns the user's settings, provisioning defaults on first read
func (h *SettingsHandler) Get(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	settings, err := h.settingsService.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}

// Update applies partial settings changes
func (h *SettingsHandler) Update(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input identity.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}
