package auth_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/tenancy/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestRegistrationFlow verifies registration, the default organisation and login.
func TestRegistrationFlow(t *testing.T) {
	baseURL, cleanup := setupTenancyContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	session := registerUser(t, client, "John", "john@example.com")

	user := session.User()
	require.NotEmpty(t, user.UserID)
	require.Equal(t, "John", user.FirstName)
	require.Equal(t, "john@example.com", user.Email)

	orgs, err := session.ListOrganisations(t.Context())
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	require.Equal(t, "John's Organisation", orgs[0].Name)

	login, err := client.Login(t.Context(), "john@example.com", testPassword)
	require.NoError(t, err)
	require.Equal(t, user, login.User())

	_, err = client.Register(t.Context(), authsdk.RegisterRequest{
		FirstName: "John",
		LastName:  "Again",
		Email:     "john@example.com",
		Password:  testPassword,
	})
	apiErr := assertAPIStatus(t, err, http.StatusUnprocessableEntity, "Duplicate email should be rejected")
	require.Equal(t, "Email already exists", apiErr.FieldMessage("email"))

	t.Logf("Registered user %s", user.UserID)
}

// TestOrganisationMembershipFlow verifies creating an organisation, adding a
// member, and the visibility that membership grants.
func TestOrganisationMembershipFlow(t *testing.T) {
	baseURL, cleanup := setupTenancyContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	owner := registerUser(t, client, "Owner", "owner@example.com")
	member := registerUser(t, client, "Member", "member@example.com")

	org, err := owner.CreateOrganisation(t.Context(), authsdk.CreateOrganisationRequest{
		Name:        "Acme",
		Description: "Widgets and sprockets",
	})
	require.NoError(t, err)
	require.NotEmpty(t, org.OrgID)

	err = owner.AddUserToOrganisation(t.Context(), org.OrgID, member.User().UserID)
	require.NoError(t, err)

	got, err := member.GetOrganisation(t.Context(), org.OrgID)
	require.NoError(t, err)
	require.Equal(t, *org, *got)

	memberOrgs, err := member.ListOrganisations(t.Context())
	require.NoError(t, err)
	require.Len(t, memberOrgs, 2)

	members, err := member.ListOrganisationMembers(t.Context(), org.OrgID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	profile, err := member.GetUser(t.Context(), owner.User().UserID)
	require.NoError(t, err)
	require.Equal(t, owner.User(), *profile)

	t.Logf("Organisation %s has %d members", org.OrgID, len(members))
}
