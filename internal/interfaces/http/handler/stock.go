package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appinventory "github.com/dukadash/backend/internal/application/inventory"
	appsales "github.com/dukadash/backend/internal/application/sales"
)

// StockHandler serves stock ledger routes
type StockHandler struct {
	BaseHandler
	stockService *appinventory.StockService
	saleService  *appsales.SaleService
}

// NewStockHandler creates a StockHandler
func NewStockHandler(stockService *appinventory.StockService, saleService *appsales.SaleService) *StockHandler {
	return &StockHandler{stockService: stockService, saleService: saleService}
}

// RegisterRoutes registers stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stocks := rg.Group("/stocks")
	{
		stocks.POST("", h.Create)
		stocks.GET("", h.List)
		stocks.GET("/summary", h.Summary)
		stocks.GET("/low-stock", h.LowStock)
		stocks.GET("/:id", h.Get)
		stocks.PUT("/:id", h.Update)
		stocks.DELETE("/:id", h.Delete)
		stocks.POST("/:id/add-stock", h.AddStock)
		stocks.POST("/:id/adjust", h.Adjust)
		stocks.POST("/:id/record-sale", h.RecordSale)
		stocks.GET("/:id/history", h.History)
	}

	// The alert evaluation also answers under /alerts for dashboards
	// that poll it independently of the stock list.
	alerts := rg.Group("/alerts")
	{
		alerts.GET("/low-stock", h.LowStock)
	}
}

// Create adds a stock line
func (h *StockHandler) Create(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input appinventory.CreateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stock, err := h.stockService.CreateStock(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, stock)
}

// List returns the user's stock lines, optionally scoped to a shop
func (h *StockHandler) List(c *gin.Context) {
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

	filter, err := bindFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if category := c.Query("category"); category != "" {
		filter = filter.WithFilter("category", category)
	}

	result, err := h.stockService.ListStocks(c.Request.Context(), userID, shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// Summary rolls up the user's inventory
func (h *StockHandler) Summary(c *gin.Context) {
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

	summary, err := h.stockService.Summary(c.Request.Context(), userID, shopID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// LowStock evaluates low-stock alerts, critical lines first
func (h *StockHandler) LowStock(c *gin.Context) {
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

	report, err := h.stockService.EvaluateAlerts(c.Request.Context(), userID, shopID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// Get returns one stock line
func (h *StockHandler) Get(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stockID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock ID")
		return
	}

	stock, err := h.stockService.GetStock(c.Request.Context(), userID, stockID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stock)
}

// Update changes a stock line's descriptive fields
func (h *StockHandler) Update(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stockID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock ID")
		return
	}

	var input appinventory.UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stock, err := h.stockService.UpdateStock(c.Request.Context(), userID, stockID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stock)
}

// Delete removes a stock line
func (h *StockHandler) Delete(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stockID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock ID")
		return
	}

	if err := h.stockService.DeleteStock(c.Request.Context(), userID, stockID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddStock receives new quantity into a stock line
func (h *StockHandler) AddStock(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stockID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock ID")
		return
	}

	var input appinventory.QuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stock, err := h.stockService.AddStock(c.Request.Context(), userID, stockID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stock)
}

// Adjust sets an absolute on-hand quantity after a physical count
func (h *StockHandler) Adjust(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stockID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock ID")
		return
	}

	var input appinventory.QuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stock, err := h.stockService.AdjustStock(c.Request.Context(), userID, stockID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stock)
}

// recordSaleBody is the sale payload when the stock comes from the path
type recordSaleBody struct {
	Quantity     int              `json:"quantity" binding:"required"`
	PricePerUnit decimal.Decimal  `json:"price_per_unit" binding:"required"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	Note         string           `json:"note"`
}

// RecordSale sells from this stock line
func (h *StockHandler) RecordSale(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stockID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock ID")
		return
	}

	var body recordSaleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), userID, appsales.RecordSaleInput{
		StockID:      stockID,
		Quantity:     body.Quantity,
		PricePerUnit: body.PricePerUnit,
		TotalAmount:  body.TotalAmount,
		Note:         body.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// History returns the audit trail for a stock line
func (h *StockHandler) History(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stockID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock ID")
		return
	}

	filter, err := bindFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.stockService.History(c.Request.Context(), userID, stockID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}
