// Package httperr defines the client-facing fault raised by the service
// layer. Handlers let these errors bubble up; the central HTTP error handler
// renders them as the carried status with the carried message. Any other
// error becomes a generic 500.
package httperr

import "net/http"

// Error is an error with an HTTP status attached
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the given status and message
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest creates a 400 fault
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NotFound creates a 404 fault
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Unauthorized creates a 401 fault
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}
