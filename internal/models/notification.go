package models

import "time"

const (
	NotifyAnnouncement = "announcement"
	NotifyWarning      = "warning"
	NotifyPayment      = "payment"
)

// Notification is a message pushed to a connected browser over the
// websocket channel.
type Notification struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
