package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Status is the envelope status string (e.g. "Forbidden").
	Status string

	// Message is the human readable envelope message.
	Message string

	// Errors lists the rejected fields of a validation failure.
	Errors []FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// IsValidation reports whether the request was rejected field by field.
func (e *APIError) IsValidation() bool { return e.StatusCode == http.StatusUnprocessableEntity }

// IsUnauthorized reports a missing token or failed login.
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// IsForbidden reports an invalid token or a non-member access.
func (e *APIError) IsForbidden() bool { return e.StatusCode == http.StatusForbidden }

func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// FieldMessage returns the message recorded for field, or "".
func (e *APIError) FieldMessage(field string) string {
	for _, f := range e.Errors {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// parseErrorResponse turns a non-2xx body into an *APIError. Bodies that are
// not envelopes keep the raw text as the message.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil || (env.Message == "" && env.Status == "") {
		apiErr.Status = http.StatusText(resp.StatusCode)
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	apiErr.Status = env.Status
	apiErr.Message = env.Message
	apiErr.Errors = env.Errors
	return apiErr
}
