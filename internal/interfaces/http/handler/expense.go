package handler

import (
	"github.com/gin-gonic/gin"

	appfinance "github.com/dukadash/backend/internal/application/finance"
)

// ExpenseHandler serves expense tracking routes
type ExpenseHandler struct {
	BaseHandler
	expenseService *appfinance.ExpenseService
}

// NewExpenseHandler creates an ExpenseHandler
func NewExpenseHandler(expenseService *appfinance.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// RegisterRoutes registers expense routes
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.Create)
		expenses.GET("", h.List)
		expenses.GET("/summary", h.MonthlySummary)
		expenses.GET("/categories", h.Categories)
		expenses.GET("/:id", h.Get)
		expenses.PUT("/:id", h.Update)
		expenses.DELETE("/:id", h.Delete)
	}
}

// Create records an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input appfinance.CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, expense)
}

// List returns the user's expenses, optionally filtered by shop and
// category
func (h *ExpenseHandler) List(c *gin.Context) {
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

	result, err := h.expenseService.ListExpenses(c.Request.Context(), userID, shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// MonthlySummary rolls up the current month's spend by category
func (h *ExpenseHandler) MonthlySummary(c *gin.Context) {
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

	summary, err := h.expenseService.MonthlySummary(c.Request.Context(), userID, shopID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Categories lists the valid expense categories
func (h *ExpenseHandler) Categories(c *gin.Context) {
	h.Success(c, h.expenseService.Categories())
}

// Get returns one expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	expenseID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), userID, expenseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, expense)
}

// Update changes an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	expenseID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	var input appfinance.UpdateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, expenseID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, expense)
}

// Delete removes an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	expenseID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, expenseID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
