// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from handlers, enforces existence and cascade rules,
// and calls store methods to read and write data.
package service

import (
	"context"

	"github.com/campwild/campwild/internal/models"
	"github.com/campwild/campwild/internal/repository"
	"github.com/campwild/campwild/internal/server"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampgroundStore is the persistence surface the campground service
// depends on. *repository.CampgroundRepository satisfies it; tests use
// an in-memory substitute.
type CampgroundStore interface {
	List(ctx context.Context) ([]models.Campground, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Campground, error)
	Insert(ctx context.Context, campground *models.Campground) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Campground, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Campground, error)
	PushReview(ctx context.Context, id, reviewID primitive.ObjectID) error
	PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error
}

// ReviewStore is the persistence surface the review service depends
// on.
type ReviewStore interface {
	Insert(ctx context.Context, review *models.Review) error
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// Services is a container that groups all business services.
type Services struct {
	Campgrounds *CampgroundService
	Reviews     *ReviewService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Campgrounds: NewCampgroundService(s.Logger, repos.Campgrounds, repos.Reviews),
		Reviews:     NewReviewService(s.Logger, repos.Campgrounds, repos.Reviews),
	}, nil
}
