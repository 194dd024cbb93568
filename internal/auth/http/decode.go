package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/tenancy/pkg/httpx"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. A field holding a value of the
// wrong JSON type is left at its zero value so that validation reports it
// against the field instead of rejecting the whole body. An empty body decodes
// to the zero value for the same reason.
//
// On failure a 400 has already been written and false is returned.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	err := dec.Decode(dst)
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.As(err, &typeErr):
		return true
	default:
		httpx.WriteError(w, http.StatusBadRequest, httpx.StatusBadRequest, "Invalid request body")
		return false
	}
}

// callerFrom returns the id of the authenticated caller. Routes using it are
// wrapped in AuthnMiddleware, which guarantees the id is set.
func callerFrom(r *http.Request) string {
	id, _ := httpx.UserIDFromContext(r.Context())
	return id
}
