package service

import (
	"context"
	"sync"

	"github.com/campwild/campwild/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memCampgroundStore is an in-memory CampgroundStore used to exercise
// the services without a running database.
type memCampgroundStore struct {
	mu    sync.Mutex
	docs  map[primitive.ObjectID]*models.Campground
	order []primitive.ObjectID
}

func newMemCampgroundStore() *memCampgroundStore {
	return &memCampgroundStore{docs: map[primitive.ObjectID]*models.Campground{}}
}

func (s *memCampgroundStore) List(_ context.Context) ([]models.Campground, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Campground{}
	for _, id := range s.order {
		out = append(out, *s.docs[id])
	}
	return out, nil
}

func (s *memCampgroundStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Campground, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copy := *doc
	return &copy, nil
}

func (s *memCampgroundStore) Insert(_ context.Context, campground *models.Campground) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := primitive.NewObjectID()
	campground.ID = id
	copy := *campground
	s.docs[id] = &copy
	s.order = append(s.order, id)
	return id, nil
}

func (s *memCampgroundStore) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Campground, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for key, value := range fields {
		switch key {
		case "title":
			doc.Title = value.(string)
		case "image":
			doc.Image = value.(string)
		case "price":
			doc.Price = value.(float64)
		case "description":
			doc.Description = value.(string)
		case "location":
			doc.Location = value.(string)
		}
	}
	copy := *doc
	return &copy, nil
}

func (s *memCampgroundStore) Delete(_ context.Context, id primitive.ObjectID) (*models.Campground, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(s.docs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return doc, nil
}

func (s *memCampgroundStore) PushReview(_ context.Context, id, reviewID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	doc.Reviews = append(doc.Reviews, reviewID)
	return nil
}

func (s *memCampgroundStore) PullReview(_ context.Context, id, reviewID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil
	}
	kept := doc.Reviews[:0]
	for _, oid := range doc.Reviews {
		if oid != reviewID {
			kept = append(kept, oid)
		}
	}
	doc.Reviews = kept
	return nil
}

// memReviewStore is an in-memory ReviewStore.
type memReviewStore struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Review

	// failInsert forces Insert to fail, for compensation tests.
	failInsert error
}

func newMemReviewStore() *memReviewStore {
	return &memReviewStore{docs: map[primitive.ObjectID]models.Review{}}
}

func (s *memReviewStore) Insert(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failInsert != nil {
		return s.failInsert
	}
	s.docs[review.ID] = *review
	return nil
}

func (s *memReviewStore) ListByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Review{}
	for _, id := range ids {
		if review, ok := s.docs[id]; ok {
			out = append(out, review)
		}
	}
	return out, nil
}

func (s *memReviewStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, id)
	return nil
}

func (s *memReviewStore) DeleteByIDs(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := s.docs[id]; ok {
			delete(s.docs, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *memReviewStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
