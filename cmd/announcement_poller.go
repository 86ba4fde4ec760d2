package main

import (
	"context"
	"time"

	"societyWeb/internal/models"
)

// pollAnnouncements periodically fetches announcements with the service
// token and broadcasts anything newer than the last sweep. Without a service
// token the poller stays off and browsers rely on manual refresh.
func (app *application) pollAnnouncements() {
	token := app.cfg.Remote.ServiceToken
	if token == "" {
		app.infoLog.Println("announcement poller disabled: no service token configured")
		return
	}

	interval := app.cfg.Announcements.PollInterval
	lastSeen := time.Now()

	t := time.NewTicker(interval)
	defer t.Stop()
	for range t.C {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		items, err := app.api.Announcements(ctx, token)
		cancel()
		if err != nil {
			app.errorLog.Printf("announcement poll: %v", err)
			continue
		}

		newest := lastSeen
		for _, a := range items {
			if !a.CreatedAt.After(lastSeen) {
				continue
			}
			if a.CreatedAt.After(newest) {
				newest = a.CreatedAt
			}
			app.wsManager.Broadcast(models.Notification{
				Type:      models.NotifyAnnouncement,
				Title:     a.Title,
				Body:      a.Body,
				CreatedAt: a.CreatedAt,
			})
		}
		lastSeen = newest
	}
}
