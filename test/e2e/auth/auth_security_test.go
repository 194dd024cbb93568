package auth_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/tenancy/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestInvalidCredentials verifies that login with a wrong password or an
// unknown email is rejected the same way.
func TestInvalidCredentials(t *testing.T) {
	baseURL, cleanup := setupTenancyContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	registerUser(t, client, "Alice", "alice@example.com")

	_, err := client.Login(t.Context(), "alice@example.com", "wrong-password")
	wrongPassword := assertAPIStatus(t, err, http.StatusUnauthorized, "Invalid password should be rejected")

	_, err = client.Login(t.Context(), "nobody@example.com", testPassword)
	unknownEmail := assertAPIStatus(t, err, http.StatusUnauthorized, "Unknown email should be rejected")

	require.Equal(t, wrongPassword.Message, unknownEmail.Message)
	require.Equal(t, "Authentication failed", wrongPassword.Message)

	t.Logf("Invalid credentials correctly rejected with 401")
}

// TestInvalidAccessToken verifies that protected endpoints reject missing and
// invalid tokens.
func TestInvalidAccessToken(t *testing.T) {
	baseURL, cleanup := setupTenancyContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)

	_, err := client.NewSessionFromToken("").ListOrganisations(t.Context())
	apiErr := assertAPIStatus(t, err, http.StatusUnauthorized, "Missing token should be rejected")
	require.Equal(t, "Token not provided", apiErr.Message)

	_, err = client.NewSessionFromToken("invalid-token-12345").ListOrganisations(t.Context())
	apiErr = assertAPIStatus(t, err, http.StatusForbidden, "Invalid token should be rejected")
	require.Equal(t, "Token is invalid or expired", apiErr.Message)

	t.Logf("Invalid tokens correctly rejected")
}

// TestCrossTenantIsolation verifies that users cannot read organisations or
// profiles outside their memberships.
func TestCrossTenantIsolation(t *testing.T) {
	baseURL, cleanup := setupTenancyContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	alice := registerUser(t, client, "Alice", "alice@example.com")
	mallory := registerUser(t, client, "Mallory", "mallory@example.com")

	orgs, err := alice.ListOrganisations(t.Context())
	require.NoError(t, err)
	require.Len(t, orgs, 1)

	_, err = mallory.GetOrganisation(t.Context(), orgs[0].OrgID)
	assertAPIStatus(t, err, http.StatusForbidden, "Non-member should not read the organisation")

	err = mallory.AddUserToOrganisation(t.Context(), orgs[0].OrgID, mallory.User().UserID)
	assertAPIStatus(t, err, http.StatusForbidden, "Non-member should not add themselves")

	_, err = mallory.GetUser(t.Context(), alice.User().UserID)
	assertAPIStatus(t, err, http.StatusForbidden, "Stranger should not read another profile")

	t.Logf("Tenant boundaries enforced")
}
