// Package errors provides the HTTP-facing error type used by delivery layers.
// Domain packages keep their own sentinel errors; delivery mapError functions
// translate them into HTTPError values consumed by pkg/response.
package errors

import "net/http"

// HTTPError carries an HTTP status code alongside a user-facing message.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ErrInternalServerError is the generic 500 returned when no specific mapping exists.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// ErrBadRequest is the generic 400 for malformed request payloads.
var ErrBadRequest = NewHTTPError(http.StatusBadRequest, "invalid request")
