// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules defined in struct
// tags and converts violations into the single comma-joined message
// (plus field-level breakdown) the error page contract expects.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/campwild/campwild/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is the shared validator instance; validator.Validate is
// safe for concurrent use.
var validate = validator.New()

// Validatable is implemented by request payload types that know how to
// validate themselves. Typically Validate just runs Struct on the
// receiver.
type Validatable interface {
	Validate() error
}

// Struct runs tag-based validation against v. Request types call this
// from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds the request (body, form, and path params) into
// payload and validates it.
//
// On validation failure it returns a 400 *errs.HTTPError whose message
// joins every field violation with a comma, and whose Errors field
// carries the per-field breakdown. payload must be a pointer so Bind
// can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Invalid request payload", nil)
	}

	if err := payload.Validate(); err != nil {
		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, fieldErrors)
	}

	return nil
}

// extractValidationError converts a validator error into the combined
// message and field error list.
func extractValidationError(err error) (string, []errs.FieldError) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), nil
	}

	var fieldErrors []errs.FieldError
	var parts []string

	for _, fe := range validationErrors {
		field := fieldName(fe)
		msg := fieldMessage(fe)

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
		parts = append(parts, fmt.Sprintf("%s %s", field, msg))
	}

	return strings.Join(parts, ","), fieldErrors
}

// fieldName reports the field a violation belongs to, namespaced under
// its payload key, e.g. "campground.price" or "review.rating".
func fieldName(fe validator.FieldError) string {
	// Namespace looks like "CreateCampgroundRequest.Campground.Price";
	// drop the request type, lowercase the rest.
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())

	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())

	case "url":
		return "must be a valid URL"

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed on %s:%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
