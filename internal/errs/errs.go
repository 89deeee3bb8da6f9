package errs

import "net/http"

// InternalServerErrorMessage is the catch-all message shown when an
// unclassified failure reaches the error page.
const InternalServerErrorMessage = "Oh No, Something Went Wrong!"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// errors may carry field-level validation failures; pass nil when the
// failure has no per-field breakdown.
func NewBadRequestError(message string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 HTTPError with the generic
// message. The underlying cause belongs in the logs, not on the page.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: InternalServerErrorMessage,
		Status:  http.StatusInternalServerError,
	}
}
