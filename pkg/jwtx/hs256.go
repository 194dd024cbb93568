package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret   = errors.New("jwtx: signing secret is empty")
	ErrMissingIdentity = errors.New("jwtx: token carries no identity")

	// ErrInvalidToken is the only error Verify returns. The underlying cause
	// is wrapped for logging but callers must not branch on it.
	ErrInvalidToken = errors.New("jwtx: invalid token")
)

// Signer issues access tokens for an identity.
type Signer interface {
	Issue(userID, email string) (string, error)
}

// Verifier validates a token and gives back the claims if it is legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies access tokens with a single shared secret. It
// holds no mutable state and is safe for concurrent use.
type HS256 struct {
	secret []byte
	issuer string
	now    func() time.Time
	parser *jwt.Parser
}

var (
	_ Signer   = (*HS256)(nil)
	_ Verifier = (*HS256)(nil)
)

// NewHS256 returns a token service keyed by secret. An empty issuer disables
// the issuer check.
func NewHS256(secret, issuer string) (*HS256, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &HS256{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
		parser: jwt.NewParser(opts...),
	}, nil
}

// Issue signs a token carrying userID and email that expires AccessTokenTTL
// from now.
func (s *HS256) Issue(userID, email string) (string, error) {
	if userID == "" {
		return "", ErrMissingIdentity
	}

	claims := NewAccessClaims(userID, email, s.issuer, s.now())
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return token, nil
}

// Verify checks the algorithm, signature, expiry and issuer of token. Any
// failure yields ErrInvalidToken.
func (s *HS256) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// IsReady reports whether the service can sign tokens.
func (s *HS256) IsReady() bool {
	return s != nil && len(s.secret) > 0
}
