package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appreport "github.com/dukadash/backend/internal/application/report"
)

// AnalyticsHandler serves the dashboard aggregate routes
type AnalyticsHandler struct {
	BaseHandler
	analyticsService *appreport.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler
func NewAnalyticsHandler(analyticsService *appreport.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// RegisterRoutes registers analytics routes
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary", h.Summary)
		analytics.GET("/report-data", h.ReportData)
		analytics.GET("/profit-margin", h.ProfitMargin)
		analytics.GET("/top-products", h.TopProducts)
		analytics.GET("/expense-breakdown", h.ExpenseBreakdown)
		analytics.GET("/inventory-health", h.InventoryHealth)
		analytics.GET("/product-margins", h.ProductMargins)
	}
}

func (h *AnalyticsHandler) bindRange(c *gin.Context) (appreport.RangeInput, bool) {
	var input appreport.RangeInput
	if err := c.ShouldBindQuery(&input); err != nil {
		h.BadRequest(c, err.Error())
		return input, false
	}
	return input, true
}

// Summary returns income, expenses and profit for the window
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input, ok := h.bindRange(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.Summary(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// ReportData returns the combined payload the dashboard charts consume
func (h *AnalyticsHandler) ReportData(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input, ok := h.bindRange(c)
	if !ok {
		return
	}

	data, err := h.analyticsService.ReportData(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, data)
}

// ProfitMargin returns the income/expense ratio for the window
func (h *AnalyticsHandler) ProfitMargin(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input, ok := h.bindRange(c)
	if !ok {
		return
	}

	margin, err := h.analyticsService.ProfitMargin(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, margin)
}

// TopProducts returns the best sellers by revenue
func (h *AnalyticsHandler) TopProducts(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input, ok := h.bindRange(c)
	if !ok {
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			h.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	products, err := h.analyticsService.TopProducts(c.Request.Context(), userID, input, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// ExpenseBreakdown returns spend per category for the window
func (h *AnalyticsHandler) ExpenseBreakdown(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input, ok := h.bindRange(c)
	if !ok {
		return
	}

	breakdown, err := h.analyticsService.ExpenseBreakdown(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, breakdown)
}

// InventoryHealth classifies stock lines by alert state
func (h *AnalyticsHandler) InventoryHealth(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shopID, err := shopIDQuery(c)
	if err != nil {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	health, err := h.analyticsService.InventoryHealth(c.Request.Context(), userID, shopID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, health)
}

// ProductMargins returns lifetime per-product profitability
func (h *AnalyticsHandler) ProductMargins(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	margins, err := h.analyticsService.ProductMargins(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, margins)
}
