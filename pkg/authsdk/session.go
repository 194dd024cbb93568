package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated view of the service bound to one access token.
// It is safe for concurrent use; its fields never change.
type Session struct {
	client      *SDKClient
	accessToken string
	user        User
}

func newSession(client *SDKClient, data AuthData) *Session {
	return &Session{
		client:      client,
		accessToken: data.AccessToken,
		user:        data.User,
	}
}

// AccessToken returns the bearer token of this session.
func (s *Session) AccessToken() string { return s.accessToken }

// User returns the profile the token was issued for.
func (s *Session) User() User { return s.user }

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return s.client.doRequest(ctx, method, path, body, s.accessToken)
}

// ============================================================================
// Organisations
// ============================================================================

// ListOrganisations returns the organisations the session user belongs to.
func (s *Session) ListOrganisations(ctx context.Context) ([]Organisation, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/organisations", nil)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[OrganisationList](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return data.Organisations, nil
}

// GetOrganisation fetches one organisation the session user belongs to.
func (s *Session) GetOrganisation(ctx context.Context, orgID string) (*Organisation, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/organisations/"+url.PathEscape(orgID), nil)
	if err != nil {
		return nil, err
	}

	org, err := decodeData[Organisation](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// CreateOrganisation creates an organisation with the session user as member.
func (s *Session) CreateOrganisation(ctx context.Context, req CreateOrganisationRequest) (*Organisation, error) {
	resp, err := s.do(ctx, http.MethodPost, "/api/organisations", req)
	if err != nil {
		return nil, err
	}

	org, err := decodeData[Organisation](resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// AddUserToOrganisation adds userID to orgID.
func (s *Session) AddUserToOrganisation(ctx context.Context, orgID, userID string) error {
	resp, err := s.do(ctx, http.MethodPost, "/api/organisations/"+url.PathEscape(orgID)+"/users", AddUserRequest{UserID: userID})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// ListOrganisationMembers returns the profiles of every member of orgID.
func (s *Session) ListOrganisationMembers(ctx context.Context, orgID string) ([]User, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/organisations/"+url.PathEscape(orgID)+"/users", nil)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[MemberList](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return data.Users, nil
}
