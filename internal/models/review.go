package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is attached to exactly one campground at a time. The review
// holds no back-reference; ownership lives in Campground.Reviews.
type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Body   string             `bson:"body" json:"body"`
	Rating int                `bson:"rating" json:"rating"`
}
