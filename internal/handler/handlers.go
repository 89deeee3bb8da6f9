package handler

import (
	"github.com/campwild/campwild/internal/server"
	"github.com/campwild/campwild/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Home        *HomeHandler
	Campgrounds *CampgroundHandler
	Reviews     *ReviewHandler
	Health      *HealthHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:        NewHomeHandler(s),
		Campgrounds: NewCampgroundHandler(s, services),
		Reviews:     NewReviewHandler(s, services),
		Health:      NewHealthHandler(s),
	}
}
