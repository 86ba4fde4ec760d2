package services

import (
	"context"
	"time"

	"golang.org/x/exp/slices"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
)

type CommunityService struct {
	API *remote.Client
}

// ListAnnouncements returns pinned items first, then newest first.
func (s *CommunityService) ListAnnouncements(ctx context.Context, token string) ([]models.Announcement, error) {
	items, err := s.API.Announcements(ctx, token)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, CompareAnnouncements)
	return items, nil
}

func CompareAnnouncements(a, b models.Announcement) int {
	if a.Pinned != b.Pinned {
		if a.Pinned {
			return -1
		}
		return 1
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}

func (s *CommunityService) ListEvents(ctx context.Context, token string) ([]models.Event, error) {
	events, err := s.API.Events(ctx, token)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(events, func(a, b models.Event) int {
		return a.StartsAt.Compare(b.StartsAt)
	})
	return events, nil
}

// RSVP records attendance. Only upcoming events accept responses.
func (s *CommunityService) RSVP(ctx context.Context, token string, eventID int, response string) error {
	if response != models.RSVPGoing && response != models.RSVPNotGoing {
		return &models.ValidationError{Field: "response", Reason: "must be going or not_going"}
	}
	events, err := s.API.Events(ctx, token)
	if err != nil {
		return err
	}
	for _, e := range events {
		if e.ID == eventID {
			if !e.Upcoming(time.Now()) {
				return models.ErrEventClosed
			}
			return s.API.RSVP(ctx, token, eventID, response)
		}
	}
	return &models.ValidationError{Field: "eventId", Reason: "unknown event"}
}
