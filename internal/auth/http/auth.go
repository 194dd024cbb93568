package http

import (
	"net/http"

	"github.com/aussiebroadwan/tenancy/internal/auth/service"
	"github.com/aussiebroadwan/tenancy/pkg/httpx"
)

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Create an account and a personal organisation named after the first name.
//	@Description	Every invalid field is reported, including an email that is already registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.RegisterRequest	true	"firstName, lastName, email, password, phone"
//	@Success		201		{object}	authsdk.AuthResponse	"accessToken and user profile"
//	@Failure		400		{object}	authsdk.ErrorResponse	"malformed JSON"
//	@Failure		422		{object}	authsdk.ErrorResponse	"errors: [{field, message}]"
//	@Failure		500		{object}	authsdk.ErrorResponse
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}

	res, err := h.AccountService.Register(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Registration unsuccessful")
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "Registration successful", res)
}

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Exchange email and password for a one hour access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	authsdk.AuthResponse	"accessToken and user profile"
//	@Failure		400		{object}	authsdk.ErrorResponse	"malformed JSON"
//	@Failure		401		{object}	authsdk.ErrorResponse	"Authentication failed"
//	@Failure		422		{object}	authsdk.ErrorResponse	"errors: [{field, message}]"
//	@Failure		500		{object}	authsdk.ErrorResponse
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if !decodeJSON(w, r, &in) {
		return
	}

	res, err := h.AccountService.Login(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Login failed")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Login successful", res)
}
