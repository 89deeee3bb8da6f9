package repository

import (
	"context"

	"github.com/campwild/campwild/internal/models"
	"github.com/campwild/campwild/internal/server"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CampgroundRepository performs campground persistence operations.
type CampgroundRepository struct {
	coll *mongo.Collection
}

// NewCampgroundRepository constructs a CampgroundRepository bound to
// the campgrounds collection.
func NewCampgroundRepository(s *server.Server) *CampgroundRepository {
	return &CampgroundRepository{coll: s.DB.Campgrounds()}
}

// List returns every campground in natural (insertion) order.
func (r *CampgroundRepository) List(ctx context.Context) ([]models.Campground, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	campgrounds := []models.Campground{}
	if err := cursor.All(ctx, &campgrounds); err != nil {
		return nil, err
	}
	return campgrounds, nil
}

// GetByID fetches one campground. Returns mongo.ErrNoDocuments when no
// document matches.
func (r *CampgroundRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Campground, error) {
	var campground models.Campground
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&campground); err != nil {
		return nil, err
	}
	return &campground, nil
}

// Insert persists a new campground and returns its assigned id.
func (r *CampgroundRepository) Insert(ctx context.Context, campground *models.Campground) (primitive.ObjectID, error) {
	if campground.Reviews == nil {
		campground.Reviews = []primitive.ObjectID{}
	}

	result, err := r.coll.InsertOne(ctx, campground)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// Update replaces the listed fields with $set and returns the
// post-update document. Returns mongo.ErrNoDocuments when no document
// matches.
func (r *CampgroundRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Campground, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var campground models.Campground
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&campground)
	if err != nil {
		return nil, err
	}
	return &campground, nil
}

// Delete removes one campground and returns the deleted document so
// the caller can cascade-delete its reviews. Returns
// mongo.ErrNoDocuments when nothing was deleted.
func (r *CampgroundRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Campground, error) {
	var campground models.Campground
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&campground); err != nil {
		return nil, err
	}
	return &campground, nil
}

// PushReview atomically appends a review reference to the campground's
// review array. Returns mongo.ErrNoDocuments when the campground does
// not exist; nothing is written in that case.
func (r *CampgroundRepository) PushReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	result, err := r.coll.UpdateByID(ctx, id, bson.M{"$push": bson.M{"reviews": reviewID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// PullReview removes a review reference from the campground's review
// array. A missing reference or missing campground is a no-op, not an
// error.
func (r *CampgroundRepository) PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$pull": bson.M{"reviews": reviewID}})
	return err
}
