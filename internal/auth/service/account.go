package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
	"github.com/aussiebroadwan/tenancy/internal/auth/store"
	"github.com/aussiebroadwan/tenancy/pkg/cryptox"
	"github.com/aussiebroadwan/tenancy/pkg/idx"
	"github.com/aussiebroadwan/tenancy/pkg/jwtx"
	"github.com/aussiebroadwan/tenancy/pkg/slogx"
)

// AccountService registers users and logs them in.
type AccountService struct {
	Store  store.Store
	Tokens jwtx.Signer
}

// Register validates in, creates the user together with a personal
// organisation and returns a fresh access token.
//
// Every field violation is reported at once. The email uniqueness lookup is
// only an early check; a duplicate that slips past it is caught by the unique
// index and reported the same way.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (domain.AuthResult, error) {
	log := slogx.FromContext(ctx)

	verr, err := toValidationError(in.Validate())
	if err != nil {
		return domain.AuthResult{}, err
	}

	if !verr.Has("email") {
		_, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
		switch {
		case err == nil:
			verr.Add("email", msgEmailTaken)
		case !errors.Is(err, store.ErrNotFound):
			return domain.AuthResult{}, fmt.Errorf("lookup email: %w", err)
		}
	}
	if !verr.Empty() {
		return domain.AuthResult{}, verr
	}

	digest, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: digest,
	}
	org := domain.Organisation{
		ID:   idx.New().String(),
		Name: domain.DefaultOrganisationName(in.FirstName),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		if err := tx.Organisations().CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return tx.Memberships().AddMember(ctx, domain.Membership{OrgID: org.ID, UserID: user.ID})
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		log.Info("registration lost email race", slog.String("email", in.Email))
		return domain.AuthResult{}, emailTaken()
	}
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("create account: %w", err)
	}

	token, err := s.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("org_id", org.ID),
	)

	return domain.AuthResult{AccessToken: token, User: user.Profile()}, nil
}

// Login checks the credentials and returns a fresh access token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (domain.AuthResult, error) {
	log := slogx.FromContext(ctx)

	verr, err := toValidationError(in.Validate())
	if err != nil {
		return domain.AuthResult{}, err
	}
	if !verr.Empty() {
		return domain.AuthResult{}, verr
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	if errors.Is(err, store.ErrNotFound) {
		cryptox.BurnPasswordCheck(in.Password)
		log.Info("login failed", slog.String("reason", "unknown_email"))
		return domain.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("lookup email: %w", err)
	}

	if !cryptox.VerifyPassword(in.Password, user.PasswordHash) {
		log.Info("login failed",
			slog.String("reason", "bad_password"),
			slog.String("user_id", user.ID),
		)
		return domain.AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	log.Debug("user logged in", slog.String("user_id", user.ID))
	return domain.AuthResult{AccessToken: token, User: user.Profile()}, nil
}
