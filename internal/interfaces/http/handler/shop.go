package handler

import (
	"github.com/gin-gonic/gin"

	appshop "github.com/dukadash/backend/internal/application/shop"
)

// ShopHandler serves shop management routes
type ShopHandler struct {
	BaseHandler
	shopService *appshop.ShopService
}

// NewShopHandler creates a ShopHandler
func NewShopHandler(shopService *appshop.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// RegisterRoutes registers shop routes
func (h *ShopHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shops := rg.Group("/shops")
	{
		shops.POST("", h.Create)
		shops.GET("", h.List)
		shops.GET("/active", h.Active)
		shops.GET("/summary", h.Summary)
		shops.GET("/:id", h.Get)
		shops.PUT("/:id", h.Update)
		shops.DELETE("/:id", h.Delete)
		shops.POST("/:id/activate", h.Activate)
	}
}

// Create adds a shop
func (h *ShopHandler) Create(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input appshop.CreateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shop, err := h.shopService.CreateShop(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, shop)
}

// List returns the user's shops
func (h *ShopHandler) List(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter, err := bindFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.shopService.ListShops(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// Active returns the currently active shop
func (h *ShopHandler) Active(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shop, err := h.shopService.ActiveShop(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shop)
}

// Summary rolls up the user's shops
func (h *ShopHandler) Summary(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	summary, err := h.shopService.Summary(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Get returns one shop
func (h *ShopHandler) Get(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shopID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	shop, err := h.shopService.GetShop(c.Request.Context(), userID, shopID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shop)
}

// Update changes a shop's details
func (h *ShopHandler) Update(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shopID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	var input appshop.UpdateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shop, err := h.shopService.UpdateShop(c.Request.Context(), userID, shopID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shop)
}

// Delete removes a shop
func (h *ShopHandler) Delete(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shopID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	if err := h.shopService.DeleteShop(c.Request.Context(), userID, shopID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Activate makes a shop the active one
func (h *ShopHandler) Activate(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shopID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	shop, err := h.shopService.Activate(c.Request.Context(), userID, shopID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shop)
}
