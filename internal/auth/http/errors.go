package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tenancy/internal/auth/service"
	"github.com/aussiebroadwan/tenancy/pkg/httpx"
	"github.com/aussiebroadwan/tenancy/pkg/slogx"
)

const msgUnauthorizedAccess = "Unauthorized access"

// writeServiceError maps an error returned by a service onto the response
// envelope. Anything unrecognised is logged and answered with a 500 carrying
// failMessage, never the error text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, failMessage string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidation(w, verr)
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, httpx.StatusBadRequest, "Authentication failed")
	case errors.Is(err, service.ErrOrganisationNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.StatusNotFound, "Organisation not found")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, httpx.StatusForbidden, msgUnauthorizedAccess)
	default:
		slogx.FromContext(r.Context()).Error(failMessage, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.StatusInternalError, failMessage)
	}
}

func writeValidation(w http.ResponseWriter, verr *service.ValidationError) {
	fields := make([]httpx.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, httpx.FieldError{Field: f.Field, Message: f.Message})
	}
	httpx.WriteValidationError(w, fields)
}
