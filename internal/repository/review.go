package repository

import (
	"context"

	"github.com/campwild/campwild/internal/models"
	"github.com/campwild/campwild/internal/server"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository performs review persistence operations.
type ReviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository constructs a ReviewRepository bound to the
// reviews collection.
func NewReviewRepository(s *server.Server) *ReviewRepository {
	return &ReviewRepository{coll: s.DB.Reviews()}
}

// Insert persists a review. The id must already be assigned by the
// caller; review attachment pushes the reference before this insert
// runs.
func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) error {
	_, err := r.coll.InsertOne(ctx, review)
	return err
}

// ListByIDs resolves review references into documents, preserving the
// order of ids. References with no backing document are skipped.
func (r *ReviewRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	if len(ids) == 0 {
		return []models.Review{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var found []models.Review
	if err := cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Review, len(found))
	for _, review := range found {
		byID[review.ID] = review
	}

	reviews := make([]models.Review, 0, len(found))
	for _, id := range ids {
		if review, ok := byID[id]; ok {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

// Delete removes one review. Deleting an absent review is a no-op.
func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteByIDs bulk-deletes every review whose id appears in ids and
// reports how many were removed. Used by campground cascade delete.
func (r *ReviewRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
