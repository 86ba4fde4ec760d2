package session

import (
	"context"

	"societyWeb/internal/models"
)

type contextKey string

const (
	ctxSIDKey     contextKey = "sid"
	ctxSessionKey contextKey = "session"
)

func ContextWith(ctx context.Context, sid string, rec models.Session) context.Context {
	ctx = context.WithValue(ctx, ctxSIDKey, sid)
	return context.WithValue(ctx, ctxSessionKey, rec)
}

// SIDFromContext returns the session id attached by the session middleware.
// The remote client's auth-failure hook uses it to clear the right session.
func SIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(ctxSIDKey).(string)
	return sid, ok && sid != ""
}

func FromContext(ctx context.Context) (models.Session, bool) {
	rec, ok := ctx.Value(ctxSessionKey).(models.Session)
	return rec, ok && rec.Authenticated()
}
