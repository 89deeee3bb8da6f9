// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack and maps paths to their handlers.
package router

import (
	"github.com/campwild/campwild/internal/handler"
	"github.com/campwild/campwild/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: renderer, error handler, middleware
// order, and all route groups. The returned instance is handed to the
// server container as its http.Handler.
func New(h *handler.Handlers, m *middleware.Middlewares, renderer echo.Renderer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	// Every failure path converges on the global error handler.
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Method override must run before routing so PUT/DELETE forms
	// match their routes.
	e.Pre(m.Global.MethodOverride())

	e.Use(m.Tracing.Middleware())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())

	registerSystemRoutes(e, h)
	registerCampgroundRoutes(e, h)

	return e
}
