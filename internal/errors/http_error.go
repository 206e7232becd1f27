package errors

import (
	"errors"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helpers for the common error classes.
func NewValidationError(msg string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, msg)
}

func NewNotFoundError(msg string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, msg)
}

func NewConflictError(msg string) *HTTPError {
	return NewHTTPError(http.StatusConflict, msg)
}

func NewUnauthorizedError(msg string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, msg)
}

// StatusCode returns the HTTP status for err, falling back to 500 for
// anything that is not an *HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// IsConflict reports whether err maps to a 409.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}
