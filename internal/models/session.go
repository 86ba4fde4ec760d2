package models

import "time"

// Session is the record persisted per logged-in browser. The token is the
// remote API bearer token; the user is the cached identity adopted at login
// or during the last successful restore.
type Session struct {
	Token     string      `json:"token"`
	User      UserSummary `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

// Authenticated reports whether the record holds both a token and a user.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User.ID != 0
}
