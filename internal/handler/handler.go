// Package handler is the HTTP layer: it binds and validates requests,
// calls the service layer, and renders a view or issues a redirect.
//
// Handlers never write error responses themselves; they return errors
// and the global error handler renders the error page.
package handler

import (
	"github.com/campwild/campwild/internal/server"
)

// Handler is the base handler type holding shared application
// dependencies. Concrete handlers embed it to reach config, logger,
// and the database through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
