package handler

import (
	"net/http"

	"github.com/campwild/campwild/internal/server"
	"github.com/labstack/echo/v4"
)

// HomeHandler renders the static home page.
type HomeHandler struct {
	Handler
}

// NewHomeHandler constructs a HomeHandler.
func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{Handler: NewHandler(s)}
}

// Show renders the home view. No data access.
func (h *HomeHandler) Show(c echo.Context) error {
	return c.Render(http.StatusOK, "home", nil)
}
