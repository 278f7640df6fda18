package handler

import (
	"github.com/gin-gonic/gin"

	appsales "github.com/dukadash/backend/internal/application/sales"
)

// SaleHandler serves sale recording and summary routes
type SaleHandler struct {
	BaseHandler
	saleService *appsales.SaleService
}

// NewSaleHandler creates a SaleHandler
func NewSaleHandler(saleService *appsales.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// RegisterRoutes registers sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.Record)
		sales.GET("", h.List)
		sales.GET("/daily-summary", h.DailySummary)
		sales.GET("/yesterday-summary", h.YesterdaySummary)
		sales.GET("/:id", h.Get)
	}
}

// Record records a sale against the active shop
func (h *SaleHandler) Record(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input appsales.RecordSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// List returns the user's sales, newest first
func (h *SaleHandler) List(c *gin.Context) {
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
	if stockID := c.Query("stock_id"); stockID != "" {
		filter = filter.WithFilter("stock_id", stockID)
	}

	result, err := h.saleService.ListSales(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// DailySummary rolls up today's selling
func (h *SaleHandler) DailySummary(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	summary, err := h.saleService.DailySummary(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// YesterdaySummary rolls up yesterday's selling
func (h *SaleHandler) YesterdaySummary(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	summary, err := h.saleService.YesterdaySummary(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Get returns one sale
func (h *SaleHandler) Get(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	saleID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), userID, saleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}
