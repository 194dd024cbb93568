package service

import (
	"context"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
)

type UserService struct {
	Authorizer *MembershipAuthorizer
}

// GetProfile returns the profile of targetID as seen by callerID.
func (s *UserService) GetProfile(ctx context.Context, callerID, targetID string) (domain.UserProfile, error) {
	user, err := s.Authorizer.AuthorizeUser(ctx, callerID, targetID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	return user.Profile(), nil
}
