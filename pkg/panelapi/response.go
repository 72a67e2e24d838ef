package panelapi

import (
	"encoding/json"
	"net/http"
)

// Write writes an envelope with the given status.
func Write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

// WriteData writes a successful response with data under the envelope.
func WriteData(w http.ResponseWriter, status int, data any) {
	Write(w, status, Envelope{Success: true, Data: data})
}

// WriteRaw writes v without the envelope. The management compatibility
// endpoints use their own top-level shapes.
func WriteRaw(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes a failure envelope, taking the status from the error.
func WriteError(w http.ResponseWriter, err Error) {
	Write(w, err.StatusCode(), Envelope{Success: false, Error: &err})
}

// WriteBadRequest is a convenience for 400 errors.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, ErrBadRequest(message))
}

// WriteUnauthorized is a convenience for 401 errors.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, ErrUnauthorized(message))
}

// WriteForbidden is a convenience for 403 errors.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, ErrForbidden(message))
}

// WriteNotFound is a convenience for 404 errors.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, ErrNotFound(message))
}

// WriteInternalError is a convenience for 500 errors.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, ErrInternal(message))
}
