package http

import (
	"net/http"

	"github.com/aussiebroadwan/tenancy/internal/auth/service"
	"github.com/aussiebroadwan/tenancy/pkg/httpx"
)

type UserHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get user
//	@Description	A user may read its own profile and the profiles of users it shares an organisation with.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	authsdk.UserResponse
//	@Failure		403	{object}	authsdk.ErrorResponse	"no shared organisation"
//	@Failure		404	{object}	authsdk.ErrorResponse	"User not found"
//	@Router			/api/users/{id} [get].
func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	callerID := callerFrom(r)

	profile, err := h.UserService.GetProfile(r.Context(), callerID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to retrieve user")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "User retrieved successfully", profile)
}
