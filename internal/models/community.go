package models

import "time"

type Announcement struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Pinned    bool      `json:"pinned"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	RSVPGoing    = "going"
	RSVPNotGoing = "not_going"
)

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	GoingCount  int       `json:"goingCount"`
	MyRSVP      string    `json:"myRsvp,omitempty"`
}

// Upcoming reports whether the event has not started yet.
func (e Event) Upcoming(now time.Time) bool {
	return e.StartsAt.After(now)
}
