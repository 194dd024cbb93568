package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
	"github.com/aussiebroadwan/tenancy/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUserAndDefaultOrganisation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.accounts.Register(ctx, RegisterInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "password123",
		Phone:     "0400000000",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.Equal(t, "John", res.User.FirstName)
	require.Equal(t, "0400000000", res.User.Phone)

	claims, err := f.tokens.Verify(res.AccessToken)
	require.NoError(t, err)
	require.Equal(t, res.User.UserID, claims.UserID)
	require.Equal(t, "john@example.com", claims.Email)

	orgs, err := f.orgs.ListForUser(ctx, res.User.UserID)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	require.Equal(t, "John's Organisation", orgs[0].Name)

	stored, err := f.store.Users().GetUserByID(ctx, res.User.UserID)
	require.NoError(t, err)
	require.NotEqual(t, "password123", stored.PasswordHash)
	require.True(t, cryptox.VerifyPassword("password123", stored.PasswordHash))
}

func TestRegisterReportsEveryMissingField(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.accounts.Register(context.Background(), RegisterInput{})
	requireFields(t, err,
		FieldError{Field: "email", Message: "Invalid email format"},
		FieldError{Field: "firstName", Message: "First name is required"},
		FieldError{Field: "lastName", Message: "Last name is required"},
		FieldError{Field: "password", Message: "Password is required"},
	)
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.accounts.Register(context.Background(), RegisterInput{
		FirstName: "A", LastName: "B", Email: "not-an-email", Password: "pw",
	})
	requireFields(t, err, FieldError{Field: "email", Message: "Invalid email format"})
}

func TestRegisterRejectsOversizedPassword(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.accounts.Register(context.Background(), RegisterInput{
		FirstName: "A", LastName: "B", Email: "a@example.com", Password: strings.Repeat("x", 73),
	})
	requireFields(t, err, FieldError{Field: "password", Message: "Password must be at most 72 bytes"})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	f.register(t, "First", "dup@example.com")

	t.Run("alone", func(t *testing.T) {
		_, err := f.accounts.Register(ctx, RegisterInput{
			FirstName: "Second", LastName: "User", Email: "dup@example.com", Password: "pw",
		})
		requireFields(t, err, FieldError{Field: "email", Message: "Email already exists"})
	})

	t.Run("alongside other violations", func(t *testing.T) {
		_, err := f.accounts.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "pw"})
		requireFields(t, err,
			FieldError{Field: "email", Message: "Email already exists"},
			FieldError{Field: "firstName", Message: "First name is required"},
			FieldError{Field: "lastName", Message: "Last name is required"},
		)
	})

	t.Run("nothing was persisted", func(t *testing.T) {
		u, err := f.store.Users().GetUserByEmail(ctx, "dup@example.com")
		require.NoError(t, err)
		orgs, err := f.orgs.ListForUser(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, orgs, 1)
	})
}

func TestConcurrentRegistrationWithSameEmail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	const n = 4
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.accounts.Register(context.Background(), RegisterInput{
				FirstName: "Race", LastName: "Condition", Email: "race@example.com", Password: "pw",
			})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, []FieldError{{Field: "email", Message: "Email already exists"}}, verr.Fields)
	}
	require.Equal(t, 1, succeeded)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	reg := f.register(t, "Login", "login@example.com")

	t.Run("success", func(t *testing.T) {
		res, err := f.accounts.Login(ctx, LoginInput{Email: "login@example.com", Password: "password123"})
		require.NoError(t, err)
		require.Equal(t, reg.User, res.User)

		claims, err := f.tokens.Verify(res.AccessToken)
		require.NoError(t, err)
		require.Equal(t, reg.User.UserID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.accounts.Login(ctx, LoginInput{Email: "login@example.com", Password: "nope"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same", func(t *testing.T) {
		_, err := f.accounts.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "password123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := f.accounts.Login(ctx, LoginInput{Email: "bad"})
		requireFields(t, err,
			FieldError{Field: "email", Message: "Invalid email format"},
			FieldError{Field: "password", Message: "Password is required"},
		)
	})
}

func TestAuthResultNeverCarriesPassword(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	res := f.register(t, "Safe", "safe@example.com")
	require.Equal(t, domain.UserProfile{
		UserID:    res.User.UserID,
		FirstName: "Safe",
		LastName:  "Tester",
		Email:     "safe@example.com",
	}, res.User)
}
