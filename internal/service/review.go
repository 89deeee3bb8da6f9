package service

import (
	"context"
	"errors"

	"github.com/campwild/campwild/internal/errs"
	"github.com/campwild/campwild/internal/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewInput carries the validated fields of a review-creation
// request.
type ReviewInput struct {
	Body   string
	Rating int
}

// ReviewService attaches reviews to campgrounds and detaches them
// again.
type ReviewService struct {
	log         *zerolog.Logger
	campgrounds CampgroundStore
	reviews     ReviewStore
}

// NewReviewService constructs a ReviewService.
func NewReviewService(log *zerolog.Logger, campgrounds CampgroundStore, reviews ReviewStore) *ReviewService {
	return &ReviewService{
		log:         log,
		campgrounds: campgrounds,
		reviews:     reviews,
	}
}

// Create attaches a new review to a campground.
//
// The review id is generated here so the campground reference can be
// pushed atomically before the review document exists. A missing
// campground is a 404 and persists nothing. If the review insert fails
// after the push, the reference is pulled back out as compensation;
// should that also fail, the dangling reference is skipped at read
// time and removed by cascade delete.
func (s *ReviewService) Create(ctx context.Context, campgroundID string, input ReviewInput) error {
	oid, err := ParseID(campgroundID)
	if err != nil {
		return err
	}

	review := &models.Review{
		ID:     primitive.NewObjectID(),
		Body:   input.Body,
		Rating: input.Rating,
	}

	err = s.campgrounds.PushReview(ctx, oid, review.ID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.NewNotFoundError("Campground not found")
	}
	if err != nil {
		return err
	}

	if err := s.reviews.Insert(ctx, review); err != nil {
		if pullErr := s.campgrounds.PullReview(ctx, oid, review.ID); pullErr != nil {
			s.log.Error().
				Err(pullErr).
				Str("campground_id", oid.Hex()).
				Str("review_id", review.ID.Hex()).
				Msg("failed to detach review reference after insert failure")
		}
		return err
	}

	s.log.Info().
		Str("campground_id", oid.Hex()).
		Str("review_id", review.ID.Hex()).
		Msg("review created")
	return nil
}

// Delete detaches a review from its campground and removes the review
// document. The two writes are independent: a failure between them
// leaves the review document orphaned with no inbound reference.
// Detaching an absent reference is a no-op.
func (s *ReviewService) Delete(ctx context.Context, campgroundID, reviewID string) error {
	campOID, err := ParseID(campgroundID)
	if err != nil {
		return err
	}
	reviewOID, err := ParseID(reviewID)
	if err != nil {
		return err
	}

	if err := s.campgrounds.PullReview(ctx, campOID, reviewOID); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, reviewOID); err != nil {
		return err
	}

	s.log.Info().
		Str("campground_id", campOID.Hex()).
		Str("review_id", reviewOID.Hex()).
		Msg("review deleted")
	return nil
}
