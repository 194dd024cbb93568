package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is the fixed lifetime of every issued access token.
const AccessTokenTTL = time.Hour

// Claims is the payload carried by an access token. The identity is kept in
// "id" rather than "sub" so clients of the old service keep working.
type Claims struct {
	jwt.RegisteredClaims

	// UserID identifies the authenticated user.
	UserID string `json:"id"`

	// Email is the address the user authenticated with.
	Email string `json:"email"`
}

// NewAccessClaims builds claims for userID valid from now for AccessTokenTTL.
// now is truncated to whole seconds so exp-iat is exactly the TTL.
func NewAccessClaims(userID, email, issuer string, now time.Time) Claims {
	now = now.UTC().Truncate(time.Second)
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
		UserID: userID,
		Email:  email,
	}
}

// Validate is called by the jwt parser after the registered claims pass.
func (c Claims) Validate() error {
	if c.UserID == "" {
		return ErrMissingIdentity
	}
	if c.IssuedAt == nil || c.ExpiresAt == nil {
		return ErrMissingIdentity
	}
	return nil
}
