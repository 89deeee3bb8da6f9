package service

import (
	"context"
	"errors"

	"github.com/campwild/campwild/internal/errs"
	"github.com/campwild/campwild/internal/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CampgroundInput carries the validated fields of a create or update
// request. Construction from this type is what drops any extra fields
// a client may have sent.
type CampgroundInput struct {
	Title       string
	Image       string
	Price       float64
	Description string
	Location    string
}

// CampgroundService implements campground CRUD and the cascade-delete
// rule for attached reviews.
type CampgroundService struct {
	log         *zerolog.Logger
	campgrounds CampgroundStore
	reviews     ReviewStore
}

// NewCampgroundService constructs a CampgroundService.
func NewCampgroundService(log *zerolog.Logger, campgrounds CampgroundStore, reviews ReviewStore) *CampgroundService {
	return &CampgroundService{
		log:         log,
		campgrounds: campgrounds,
		reviews:     reviews,
	}
}

// List returns every campground, unfiltered, in insertion order.
func (s *CampgroundService) List(ctx context.Context) ([]models.Campground, error) {
	return s.campgrounds.List(ctx)
}

// Find returns one campground without resolving its reviews. Unknown
// identifiers are a 404.
func (s *CampgroundService) Find(ctx context.Context, id string) (*models.Campground, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	campground, err := s.campgrounds.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NewNotFoundError("Campground not found")
	}
	if err != nil {
		return nil, err
	}
	return campground, nil
}

// Get returns one campground with its review references resolved into
// documents. References without a backing review document are skipped.
func (s *CampgroundService) Get(ctx context.Context, id string) (*models.Campground, []models.Review, error) {
	campground, err := s.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reviews, err := s.reviews.ListByIDs(ctx, campground.Reviews)
	if err != nil {
		return nil, nil, err
	}
	return campground, reviews, nil
}

// Create persists a new campground and returns its assigned
// identifier in hex form.
func (s *CampgroundService) Create(ctx context.Context, input CampgroundInput) (string, error) {
	campground := &models.Campground{
		Title:       input.Title,
		Image:       input.Image,
		Price:       input.Price,
		Description: input.Description,
		Location:    input.Location,
		Reviews:     []primitive.ObjectID{},
	}

	id, err := s.campgrounds.Insert(ctx, campground)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("campground_id", id.Hex()).Str("title", input.Title).Msg("campground created")
	return id.Hex(), nil
}

// Update replaces every listed field of the campground with the input
// values and returns the post-update document. Unknown identifiers are
// a 404.
func (s *CampgroundService) Update(ctx context.Context, id string, input CampgroundInput) (*models.Campground, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	campground, err := s.campgrounds.Update(ctx, oid, bson.M{
		"title":       input.Title,
		"image":       input.Image,
		"price":       input.Price,
		"description": input.Description,
		"location":    input.Location,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NewNotFoundError("Campground not found")
	}
	if err != nil {
		return nil, err
	}
	return campground, nil
}

// Delete removes a campground and bulk-deletes every review it
// referenced, in that order. Deleting an absent campground is a no-op,
// not an error.
func (s *CampgroundService) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	campground, err := s.campgrounds.Delete(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return err
	}

	deleted, err := s.reviews.DeleteByIDs(ctx, campground.Reviews)
	if err != nil {
		return err
	}

	s.log.Info().
		Str("campground_id", oid.Hex()).
		Int64("reviews_deleted", deleted).
		Msg("campground deleted")
	return nil
}

// ParseID converts a client-supplied hex identifier into an ObjectID.
// Any malformed identifier is a 400, regardless of which driver error
// the conversion produced.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errs.NewBadRequestError("Invalid identifier", nil)
	}
	return oid, nil
}
