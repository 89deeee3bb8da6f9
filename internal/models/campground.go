// Package models defines the documents persisted in MongoDB.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campground is the primary listing entity. Reviews holds references to
// documents in the reviews collection, in insertion order.
type Campground struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Image       string               `bson:"image" json:"image"`
	Price       float64              `bson:"price" json:"price"`
	Description string               `bson:"description" json:"description"`
	Location    string               `bson:"location" json:"location"`
	Reviews     []primitive.ObjectID `bson:"reviews" json:"reviews"`
}
