package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dukadash/backend/internal/interfaces/http/dto"
)

// SystemHandler serves health and version routes
type SystemHandler struct {
	BaseHandler
	db      *gorm.DB
	version string
}

// NewSystemHandler creates a SystemHandler
func NewSystemHandler(db *gorm.DB, version string) *SystemHandler {
	return &SystemHandler{db: db, version: version}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/health", h.Health)
	}
}

// Health reports service and database status. It answers 503 when the
// database is unreachable so load balancers can rotate the instance out.
func (h *SystemHandler) Health(c *gin.Context) {
	status := gin.H{
		"status":  "ok",
		"version": h.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		c.JSON(http.StatusServiceUnavailable, dto.Response{Success: false, Data: status})
		return
	}
	status["database"] = "ok"

	h.Success(c, status)
}
