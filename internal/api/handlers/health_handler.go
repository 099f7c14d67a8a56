package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// pingTimeout bounds the database probe so a stuck pool cannot hang the probe endpoints
const pingTimeout = 2 * time.Second

// HealthHandler handles liveness and readiness probes for the post store
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// pingDatabase returns a short reason when the database is unreachable
func (h *HealthHandler) pingDatabase(ctx context.Context) string {
	sqlDB, err := h.db.DB()
	if err != nil {
		return "database connection failed"
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return "database ping failed"
	}
	return ""
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	if reason := h.pingDatabase(c.Request().Context()); reason != "" {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: map[string]string{"database": "unhealthy"},
		})
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Services: map[string]string{"database": "healthy"},
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c echo.Context) error {
	if reason := h.pingDatabase(c.Request().Context()); reason != "" {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": reason,
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
	})
}
