package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrOrganisationNotFound = fmt.Errorf("organisation %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)

	// ErrForbidden means the resource exists but the caller is not allowed
	// to see or change it.
	ErrForbidden = errors.New("forbidden")

	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// FieldError is a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every rejected field of one request. Fields are
// kept sorted by name.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field already carries a violation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Add records a violation for field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	sort.SliceStable(e.Fields, func(i, j int) bool { return e.Fields[i].Field < e.Fields[j].Field })
}

// Empty reports whether no violation was recorded.
func (e *ValidationError) Empty() bool { return e == nil || len(e.Fields) == 0 }

// toValidationError flattens the output of ozzo-validation. A nil input gives
// an empty ValidationError; anything other than validation.Errors is returned
// unchanged as an internal failure.
func toValidationError(err error) (*ValidationError, error) {
	verr := &ValidationError{}
	if err == nil {
		return verr, nil
	}

	var fields validation.Errors
	if !errors.As(err, &fields) {
		return nil, err
	}

	for field, ferr := range fields {
		if ferr == nil {
			continue
		}
		verr.Fields = append(verr.Fields, FieldError{Field: field, Message: ferr.Error()})
	}
	sort.Slice(verr.Fields, func(i, j int) bool { return verr.Fields[i].Field < verr.Fields[j].Field })
	return verr, nil
}

func emailTaken() *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: "email", Message: msgEmailTaken}}}
}
