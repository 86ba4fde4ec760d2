package services

import (
	"context"
	"strings"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
	"societyWeb/internal/session"
)

type ProfileService struct {
	API      *remote.Client
	Sessions *session.Store
}

// UpdateProfile applies the change and re-fetches the authoritative record,
// refreshing the session cache. Derived fields are never patched locally.
func (s *ProfileService) UpdateProfile(ctx context.Context, token, sid string, update models.ProfileUpdate) (models.UserSummary, error) {
	if update.Name != "" && strings.TrimSpace(update.Name) == "" {
		return models.UserSummary{}, &models.ValidationError{Field: "name", Reason: "must not be blank"}
	}
	if err := s.API.UpdateProfile(ctx, token, update); err != nil {
		return models.UserSummary{}, err
	}
	user, err := s.API.Me(ctx, token)
	if err != nil {
		return models.UserSummary{}, err
	}
	s.Sessions.UpdateUser(ctx, sid, user)
	return user, nil
}
