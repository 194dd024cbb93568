package http

import (
	"net/http"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
	"github.com/aussiebroadwan/tenancy/internal/auth/service"
	"github.com/aussiebroadwan/tenancy/pkg/httpx"
)

// OrganisationsHandler serves /api/organisations. Every route sits behind
// the authn middleware, so the caller id is always in the context.
type OrganisationsHandler struct {
	OrganisationService *service.OrganisationService
}

type organisationList struct {
	Organisations []domain.OrganisationView `json:"organisations"`
}

type memberList struct {
	Users []domain.UserProfile `json:"users"`
}

// List godoc
//
//	@Summary		List organisations
//	@Description	Organisations the caller belongs to, oldest membership first.
//	@Tags			Organisations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.OrganisationListResponse
//	@Failure		401	{object}	authsdk.ErrorResponse	"Token not provided"
//	@Failure		403	{object}	authsdk.ErrorResponse	"Token is invalid or expired"
//	@Router			/api/organisations [get].
func (h *OrganisationsHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID := callerFrom(r)

	orgs, err := h.OrganisationService.ListForUser(r.Context(), callerID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to retrieve organisations")
		return
	}

	views := make([]domain.OrganisationView, 0, len(orgs))
	for _, o := range orgs {
		views = append(views, o.View())
	}
	httpx.WriteSuccess(w, http.StatusOK, "Organisations retrieved successfully", organisationList{Organisations: views})
}

// Get godoc
//
//	@Summary		Get organisation
//	@Tags			Organisations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			orgId	path		string	true	"Organisation ID"
//	@Success		200		{object}	authsdk.OrganisationResponse
//	@Failure		403		{object}	authsdk.ErrorResponse	"caller is not a member"
//	@Failure		404		{object}	authsdk.ErrorResponse	"Organisation not found"
//	@Router			/api/organisations/{orgId} [get].
func (h *OrganisationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID := callerFrom(r)

	org, err := h.OrganisationService.Get(r.Context(), callerID, r.PathValue("orgId"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to retrieve organisation")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Organisation retrieved successfully", org.View())
}

// Create godoc
//
//	@Summary		Create organisation
//	@Description	The caller becomes the first member.
//	@Tags			Organisations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		authsdk.CreateOrganisationRequest	true	"name, description"
//	@Success		201		{object}	authsdk.OrganisationResponse
//	@Failure		422		{object}	authsdk.ErrorResponse	"Name is required"
//	@Router			/api/organisations [post].
func (h *OrganisationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateOrganisationInput
	if !decodeJSON(w, r, &in) {
		return
	}
	callerID := callerFrom(r)

	org, err := h.OrganisationService.Create(r.Context(), callerID, in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create organisation")
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "Organisation created successfully", org.View())
}

// AddMember godoc
//
//	@Summary		Add user to organisation
//	@Description	Only members may add users. Adding an existing member succeeds.
//	@Tags			Organisations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			orgId	path		string					true	"Organisation ID"
//	@Param			body	body		authsdk.AddUserRequest	true	"userId"
//	@Success		200		{object}	authsdk.MessageResponse
//	@Failure		403		{object}	authsdk.ErrorResponse	"caller is not a member"
//	@Failure		404		{object}	authsdk.ErrorResponse	"organisation or user not found"
//	@Failure		422		{object}	authsdk.ErrorResponse	"User ID is required"
//	@Router			/api/organisations/{orgId}/users [post].
func (h *OrganisationsHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var in service.AddMemberInput
	if !decodeJSON(w, r, &in) {
		return
	}
	callerID := callerFrom(r)

	if err := h.OrganisationService.AddMember(r.Context(), callerID, r.PathValue("orgId"), in); err != nil {
		writeServiceError(w, r, err, "Failed to add user to organisation")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "User added to organisation successfully", nil)
}

// ListMembers godoc
//
//	@Summary		List organisation members
//	@Tags			Organisations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			orgId	path		string	true	"Organisation ID"
//	@Success		200		{object}	authsdk.MemberListResponse
//	@Failure		403		{object}	authsdk.ErrorResponse	"caller is not a member"
//	@Failure		404		{object}	authsdk.ErrorResponse	"Organisation not found"
//	@Router			/api/organisations/{orgId}/users [get].
func (h *OrganisationsHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	callerID := callerFrom(r)

	users, err := h.OrganisationService.ListMembers(r.Context(), callerID, r.PathValue("orgId"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to retrieve organisation members")
		return
	}

	profiles := make([]domain.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	httpx.WriteSuccess(w, http.StatusOK, "Organisation members retrieved successfully", memberList{Users: profiles})
}
