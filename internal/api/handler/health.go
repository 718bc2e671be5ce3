package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /api/health — liveness probe.
// Returns 200 unconditionally; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ReadinessHandler handles GET /api/health/ready — readiness probe.
// Pings the selected credential store before declaring the service ready.
type ReadinessHandler struct {
	ping func(context.Context) error
}

func NewReadinessHandler(ping func(context.Context) error) *ReadinessHandler {
	return &ReadinessHandler{ping: ping}
}

type readinessResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Error  string `json:"error,omitempty"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{
			Status: "degraded",
			Store:  "unhealthy",
			Error:  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, readinessResponse{Status: "ok", Store: "ok"})
}
