package httpx

import (
	"encoding/json"
	"net/http"
)

// Status values used in the response envelope.
const (
	StatusSuccess        = "success"
	StatusBadRequest     = "Bad request"
	StatusUnauthorized   = "Unauthorized"
	StatusForbidden      = "Forbidden"
	StatusNotFound       = "Not found"
	StatusInternalError  = "Internal server error"
	StatusValidationFail = "Unprocessable entity"
)

// Envelope is the body shape shared by every endpoint.
type Envelope struct {
	Status     string       `json:"status"`
	Message    string       `json:"message"`
	Data       any          `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	StatusCode int          `json:"statusCode,omitempty"`
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes a success envelope carrying data.
func WriteSuccess(w http.ResponseWriter, code int, message string, data any) {
	WriteJSON(w, code, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// WriteError writes a failure envelope. The status code is echoed in the body.
func WriteError(w http.ResponseWriter, code int, status, message string) {
	WriteJSON(w, code, Envelope{
		Status:     status,
		Message:    message,
		StatusCode: code,
	})
}

// WriteValidationError writes a 422 envelope enumerating every rejected field.
func WriteValidationError(w http.ResponseWriter, fields []FieldError) {
	WriteJSON(w, http.StatusUnprocessableEntity, Envelope{
		Status:     StatusValidationFail,
		Message:    "Validation failed",
		Errors:     fields,
		StatusCode: http.StatusUnprocessableEntity,
	})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
