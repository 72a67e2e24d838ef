// Package panelapi defines the response envelope the panel endpoints speak.
// Successful responses carry {"success": true, "data": ...}; failures carry
// {"success": false, "error": {"code": ..., "message": ...}}.
package panelapi

import "net/http"

// ContentType is the media type of every panel response.
const ContentType = "application/json; charset=utf-8"

// Envelope is the top-level shape of a panel response. Reset replies put
// their message and removed count beside success instead of under data.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Removed *int   `json:"removed,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error describes a failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	status int
}

// StatusCode returns the HTTP status the error should be written with.
func (e Error) StatusCode() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

// NewError creates an error with an explicit HTTP status.
func NewError(status int, code, message string) Error {
	return Error{Code: code, Message: message, status: status}
}

// ErrBadRequest builds a 400 error.
func ErrBadRequest(message string) Error {
	return NewError(http.StatusBadRequest, "bad_request", message)
}

// ErrUnauthorized builds a 401 error.
func ErrUnauthorized(message string) Error {
	return NewError(http.StatusUnauthorized, "unauthorized", message)
}

// ErrForbidden builds a 403 error.
func ErrForbidden(message string) Error {
	return NewError(http.StatusForbidden, "forbidden", message)
}

// ErrNotFound builds a 404 error.
func ErrNotFound(message string) Error {
	return NewError(http.StatusNotFound, "not_found", message)
}

// ErrInternal builds a 500 error.
func ErrInternal(message string) Error {
	if message == "" {
		message = "internal server error"
	}
	return NewError(http.StatusInternalServerError, "internal_error", message)
}
