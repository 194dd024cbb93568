package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// GetUser fetches the profile of userID. The session user may read its own
// profile and those of users it shares an organisation with.
func (s *Session) GetUser(ctx context.Context, userID string) (*User, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}

	user, err := decodeData[User](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
