package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sarhadcorp/catalog-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business logic.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Liveness probe for load balancers and uptime monitors.
	r.GET("/health", h.Health.CheckHealth)
}
