package router

import (
	"github.com/campwild/campwild/internal/handler"
	"github.com/campwild/campwild/internal/view"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not business
// logic: the health endpoint and the embedded static assets.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by uptime monitors / orchestrators).
	e.GET("/status", h.Health.CheckHealth)

	// Stylesheet and any future assets, embedded in the binary.
	e.StaticFS("/static", view.StaticFS())
}
