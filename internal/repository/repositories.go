// Package repository handles all interactions with the database.
//
// It contains the MongoDB queries and update documents, abstracting
// driver logic away from the service layer.
package repository

import (
	"github.com/campwild/campwild/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Campgrounds *CampgroundRepository
	Reviews     *ReviewRepository
}

// NewRepositories constructs the repository container from the shared
// application dependencies.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Campgrounds: NewCampgroundRepository(s),
		Reviews:     NewReviewRepository(s),
	}
}
