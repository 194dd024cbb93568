package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
	"github.com/aussiebroadwan/tenancy/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestAuthorizerChecksExistenceBeforeMembership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	authz := f.orgs.Authorizer

	alice := f.register(t, "Alice", "alice@example.com").User
	mallory := f.register(t, "Mallory", "mallory@example.com").User

	orgs, err := f.orgs.ListForUser(ctx, alice.UserID)
	require.NoError(t, err)

	// Existing organisation, outsider: forbidden. Missing organisation,
	// anyone: not found.
	_, err = authz.AuthorizeOrganisation(ctx, mallory.UserID, orgs[0].ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = authz.AuthorizeOrganisation(ctx, mallory.UserID, idx.New().String())
	require.ErrorIs(t, err, ErrOrganisationNotFound)

	_, err = authz.AuthorizeUser(ctx, mallory.UserID, alice.UserID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = authz.AuthorizeUser(ctx, mallory.UserID, idx.New().String())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthorizerRejectsMalformedIDsWithoutLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.register(t, "Alice", "alice@example.com").User

	// A row whose id is not a ULID is unreachable through the authorizer.
	now := time.Now().UTC()
	require.NoError(t, f.store.Organisations().CreateOrganisation(ctx, domain.Organisation{
		ID: "legacy-org", Name: "Legacy", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.store.Memberships().AddMember(ctx, domain.Membership{
		OrgID: "legacy-org", UserID: alice.UserID, CreatedAt: now,
	}))

	_, err := f.orgs.Authorizer.AuthorizeOrganisation(ctx, alice.UserID, "legacy-org")
	require.ErrorIs(t, err, ErrOrganisationNotFound)

	for _, id := range []string{"", "ghost", "../etc/passwd", "01J1Z8YQ6M1X4W1T7E2ZP2Z3Y"} {
		_, err := f.users.GetProfile(ctx, alice.UserID, id)
		require.ErrorIs(t, err, ErrUserNotFound, "id %q", id)

		err = f.orgs.AddMember(ctx, alice.UserID, f.mustDefaultOrg(t, alice.UserID), AddMemberInput{UserID: id})
		if id == "" {
			requireFields(t, err, FieldError{Field: "userId", Message: msgUserIDRequired})
			continue
		}
		require.ErrorIs(t, err, ErrUserNotFound, "id %q", id)
	}
}

func (f *fixture) mustDefaultOrg(t *testing.T, userID string) string {
	t.Helper()

	orgs, err := f.orgs.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	for _, o := range orgs {
		if idx.Valid(o.ID) {
			return o.ID
		}
	}
	t.Fatalf("user %s has no organisation", userID)
	return ""
}
