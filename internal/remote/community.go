package remote

import (
	"context"
	"fmt"
	"net/http"

	"societyWeb/internal/models"
)

func (c *Client) Announcements(ctx context.Context, token string) ([]models.Announcement, error) {
	var items []models.Announcement
	if err := c.do(ctx, http.MethodGet, "/announcements", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Events(ctx context.Context, token string) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) RSVP(ctx context.Context, token string, eventID int, response string) error {
	body := struct {
		Response string `json:"response"`
	}{Response: response}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/rsvp", eventID), token, body, nil)
}
