package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
	"github.com/aussiebroadwan/tenancy/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/tenancy/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *sqlite.Store
	tokens   *jwtx.HS256
	accounts *AccountService
	orgs     *OrganisationService
	users    *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := jwtx.NewHS256("service-test-secret", "tenancy-test")
	require.NoError(t, err)

	authz := &MembershipAuthorizer{Store: st}
	return &fixture{
		store:    st,
		tokens:   tokens,
		accounts: &AccountService{Store: st, Tokens: tokens},
		orgs:     &OrganisationService{Store: st, Authorizer: authz},
		users:    &UserService{Authorizer: authz},
	}
}

func (f *fixture) register(t *testing.T, first, email string) domain.AuthResult {
	t.Helper()

	res, err := f.accounts.Register(context.Background(), RegisterInput{
		FirstName: first,
		LastName:  "Tester",
		Email:     email,
		Password:  "password123",
	})
	require.NoError(t, err)
	return res
}

func requireFields(t *testing.T, err error, want ...FieldError) {
	t.Helper()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, want, verr.Fields)
}
