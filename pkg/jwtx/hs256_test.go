package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef"

func newTestService(t *testing.T) *HS256 {
	t.Helper()
	s, err := NewHS256(testSecret, "tenancy-test")
	require.NoError(t, err)
	return s
}

func TestNewHS256RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256("", "tenancy")
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	token, err := s.Issue("01J1Z8YQ6M1X4W1T7E2ZP2Z3YQ", "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(token, "."), "compact JWS has three segments")

	claims, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01J1Z8YQ6M1X4W1T7E2ZP2Z3YQ", claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "tenancy-test", claims.Issuer)
	require.Equal(t, int64(3600), claims.ExpiresAt.Unix()-claims.IssuedAt.Unix())
}

func TestIssueRequiresIdentity(t *testing.T) {
	t.Parallel()

	_, err := newTestService(t).Issue("", "alice@example.com")
	require.ErrorIs(t, err, ErrMissingIdentity)
}

func TestVerifyRejectsOtherSecret(t *testing.T) {
	t.Parallel()

	s1 := newTestService(t)
	s2, err := NewHS256("another-secret", "tenancy-test")
	require.NoError(t, err)

	token, err := s1.Issue("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = s2.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	s.now = func() time.Time { return time.Now().Add(-AccessTokenTTL - time.Minute) }

	token, err := s.Issue("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	other, err := NewHS256(testSecret, "someone-else")
	require.NoError(t, err)
	token, err := other.Issue("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = newTestService(t).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignAlgorithms(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	claims := NewAccessClaims("user-1", "a@example.com", "tenancy-test", time.Now())

	t.Run("HS512 with the same secret", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = s.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned none token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = s.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestVerifyRejectsMissingIdentity(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	claims := NewAccessClaims("", "a@example.com", "tenancy-test", time.Now())
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	for _, raw := range []string{"", "abc", "a.b.c", "Bearer x.y.z"} {
		_, err := s.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken, "input %q", raw)
	}
}

func TestIsReady(t *testing.T) {
	t.Parallel()

	require.True(t, newTestService(t).IsReady())

	var nilService *HS256
	require.False(t, nilService.IsReady())
}
