// Package dberr classifies MongoDB driver errors.
//
// It converts the driver's error zoo (no-document sentinels, invalid
// ObjectID hex, duplicate keys, timeouts) into application HTTP errors
// so the global error handler can produce a correct status without
// knowing anything about the driver.
package dberr

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Code is the application-level category of a database error.
type Code int

const (
	Other Code = iota
	NotFound
	InvalidID
	DuplicateKey
	Timeout
	Network
)

// Classify maps a driver error to its Code.
func Classify(err error) Code {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound
	case errors.Is(err, primitive.ErrInvalidHex):
		return InvalidID
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return Timeout
	case mongo.IsNetworkError(err):
		return Network
	default:
		return Other
	}
}
