// Package apierror provides the typed errors handlers translate into HTTP
// responses. All client-facing messages go through this package so that
// internal details (stack traces, SQL text) never leak into a response.
package apierror

import "net/http"

// Error carries the HTTP status a failure maps to alongside its
// user-facing message (Spanish, like the rest of the API surface).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation marks a 400 failure: missing required fields or an update
// request with nothing to update.
func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// NotFound marks a 404 failure for an unknown record id.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Internal marks a 500 failure: the store rejected a statement or an
// image could not be persisted.
func Internal(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}
