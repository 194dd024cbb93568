package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
	"github.com/aussiebroadwan/tenancy/internal/auth/store"
	"github.com/aussiebroadwan/tenancy/pkg/idx"
)

// MembershipAuthorizer decides whether an authenticated caller may touch an
// organisation or another user's profile. Membership is the only permission:
// there are no roles.
//
// Every check loads the target first, so a missing resource is always
// ErrNotFound and only an existing one can yield ErrForbidden. Identifiers
// that are not ULIDs cannot name a stored row and are reported missing
// without a lookup.
type MembershipAuthorizer struct {
	Store store.Store
}

// AuthorizeOrganisation returns the organisation if callerID is a member.
func (a *MembershipAuthorizer) AuthorizeOrganisation(ctx context.Context, callerID, orgID string) (domain.Organisation, error) {
	if !idx.Valid(orgID) {
		return domain.Organisation{}, ErrOrganisationNotFound
	}

	org, err := a.Store.Organisations().GetOrganisationByID(ctx, orgID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Organisation{}, ErrOrganisationNotFound
	}
	if err != nil {
		return domain.Organisation{}, fmt.Errorf("load organisation: %w", err)
	}

	ok, err := a.Store.Memberships().IsMember(ctx, orgID, callerID)
	if err != nil {
		return domain.Organisation{}, fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return domain.Organisation{}, ErrForbidden
	}
	return org, nil
}

// AuthorizeAddMember applies the rule for adding users to an organisation:
// only an existing member may do it.
func (a *MembershipAuthorizer) AuthorizeAddMember(ctx context.Context, callerID, orgID string) (domain.Organisation, error) {
	return a.AuthorizeOrganisation(ctx, callerID, orgID)
}

// AuthorizeUser returns targetID's record if the caller is that user or
// shares at least one organisation with them.
func (a *MembershipAuthorizer) AuthorizeUser(ctx context.Context, callerID, targetID string) (domain.User, error) {
	if !idx.Valid(targetID) {
		return domain.User{}, ErrUserNotFound
	}

	user, err := a.Store.Users().GetUserByID(ctx, targetID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}

	if callerID == targetID {
		return user, nil
	}

	ok, err := a.Store.Memberships().SharesOrganisation(ctx, callerID, targetID)
	if err != nil {
		return domain.User{}, fmt.Errorf("check shared organisation: %w", err)
	}
	if !ok {
		return domain.User{}, ErrForbidden
	}
	return user, nil
}
