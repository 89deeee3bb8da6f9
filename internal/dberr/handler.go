package dberr

import (
	"github.com/campwild/campwild/internal/errs"
)

// HandleError converts a database error into an *errs.HTTPError.
//
// Identifier problems supplied by the client map to 4xx; everything
// operational (timeouts, connectivity, unknown driver failures) maps to
// the generic 500.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	switch Classify(err) {
	case NotFound:
		return errs.NewNotFoundError("Record not found")
	case InvalidID:
		return errs.NewBadRequestError("Invalid identifier", nil)
	case DuplicateKey:
		return errs.NewBadRequestError("A record with this identifier already exists", nil)
	default:
		return errs.NewInternalServerError()
	}
}
