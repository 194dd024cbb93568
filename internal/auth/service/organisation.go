package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
	"github.com/aussiebroadwan/tenancy/internal/auth/store"
	"github.com/aussiebroadwan/tenancy/pkg/idx"
	"github.com/aussiebroadwan/tenancy/pkg/slogx"
)

type OrganisationService struct {
	Store      store.Store
	Authorizer *MembershipAuthorizer
}

// ListForUser returns the organisations callerID belongs to.
func (s *OrganisationService) ListForUser(ctx context.Context, callerID string) ([]domain.Organisation, error) {
	orgs, err := s.Store.Organisations().ListOrganisationsForUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}
	return orgs, nil
}

func (s *OrganisationService) Get(ctx context.Context, callerID, orgID string) (domain.Organisation, error) {
	return s.Authorizer.AuthorizeOrganisation(ctx, callerID, orgID)
}

// Create makes a new organisation with the caller as its first member.
func (s *OrganisationService) Create(ctx context.Context, callerID string, in CreateOrganisationInput) (domain.Organisation, error) {
	verr, err := toValidationError(in.Validate())
	if err != nil {
		return domain.Organisation{}, err
	}
	if !verr.Empty() {
		return domain.Organisation{}, verr
	}

	org := domain.Organisation{
		ID:          idx.New().String(),
		Name:        in.Name,
		Description: in.Description,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Organisations().CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return tx.Memberships().AddMember(ctx, domain.Membership{OrgID: org.ID, UserID: callerID})
	})
	if err != nil {
		return domain.Organisation{}, fmt.Errorf("create organisation: %w", err)
	}

	slogx.FromContext(ctx).Info("organisation created",
		slog.String("org_id", org.ID),
		slog.String("created_by", callerID),
	)
	return org, nil
}

// AddMember adds in.UserID to orgID. The caller must already be a member and
// the target user must exist. Adding an existing member succeeds.
func (s *OrganisationService) AddMember(ctx context.Context, callerID, orgID string, in AddMemberInput) error {
	verr, err := toValidationError(in.Validate())
	if err != nil {
		return err
	}
	if !verr.Empty() {
		return verr
	}

	if _, err := s.Authorizer.AuthorizeAddMember(ctx, callerID, orgID); err != nil {
		return err
	}

	if !idx.Valid(in.UserID) {
		return ErrUserNotFound
	}
	if _, err := s.Store.Users().GetUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}

	if err := s.Store.Memberships().AddMember(ctx, domain.Membership{OrgID: orgID, UserID: in.UserID}); err != nil {
		return fmt.Errorf("add member: %w", err)
	}

	slogx.FromContext(ctx).Info("member added",
		slog.String("org_id", orgID),
		slog.String("user_id", in.UserID),
		slog.String("added_by", callerID),
	)
	return nil
}

// ListMembers returns the users of orgID. Only members may list them.
func (s *OrganisationService) ListMembers(ctx context.Context, callerID, orgID string) ([]domain.User, error) {
	if _, err := s.Authorizer.AuthorizeOrganisation(ctx, callerID, orgID); err != nil {
		return nil, err
	}

	users, err := s.Store.Memberships().ListMembers(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return users, nil
}
