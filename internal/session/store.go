package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
)

// Store is the single owner of authentication state. Records live in redis
// under session:<sid>; nothing else mutates them. The remote client's
// auth-failure hook funnels every 401/403 into Delete, so token clearing is
// never duplicated per handler.
type Store struct {
	rdb        *redis.Client
	api        *remote.Client
	defaultTTL time.Duration
}

func NewStore(rdb *redis.Client, api *remote.Client, defaultTTL time.Duration) *Store {
	return &Store{rdb: rdb, api: api, defaultTTL: defaultTTL}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

// Login unconditionally creates a session for the given pair. The remote
// API already validated the credentials that produced them.
func (s *Store) Login(ctx context.Context, user models.UserSummary, token string) (string, error) {
	sid := uuid.NewString()
	rec := models.Session{Token: token, User: user, CreatedAt: time.Now().UTC()}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	ttl := TokenTTL(token, s.defaultTTL)
	if err := s.rdb.Set(ctx, sessionKey(sid), data, ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

// Get loads the record without touching the remote API.
func (s *Store) Get(ctx context.Context, sid string) (models.Session, bool) {
	if sid == "" {
		return models.Session{}, false
	}
	data, err := s.rdb.Get(ctx, sessionKey(sid)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("session get %s: %v", sid, err)
		}
		return models.Session{}, false
	}
	var rec models.Session
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("session decode %s: %v", sid, err)
		return models.Session{}, false
	}
	if !rec.Authenticated() {
		return models.Session{}, false
	}
	return rec, true
}

// Restore validates the persisted token against the identity endpoint and
// adopts the returned user. Any failure, network or auth, degrades to "not
// authenticated" with the record cleared; it never propagates an error.
func (s *Store) Restore(ctx context.Context, sid string) (models.Session, bool) {
	rec, ok := s.Get(ctx, sid)
	if !ok {
		return models.Session{}, false
	}

	user, err := s.api.Me(ctx, rec.Token)
	if err != nil {
		// The hook already cleared the record on 401/403; Delete again is
		// harmless and covers network failures too.
		if !remote.IsAuthError(err) {
			log.Printf("session restore %s: %v", sid, err)
		}
		_ = s.Delete(ctx, sid)
		return models.Session{}, false
	}

	rec.User = user
	s.save(ctx, sid, rec)
	return rec, true
}

// UpdateUser replaces the cached user record, keeping the token and TTL.
func (s *Store) UpdateUser(ctx context.Context, sid string, user models.UserSummary) {
	rec, ok := s.Get(ctx, sid)
	if !ok {
		return
	}
	rec.User = user
	s.save(ctx, sid, rec)
}

// Logout clears the session unconditionally. Server-side invalidation is
// best effort and never awaited for UI purposes.
func (s *Store) Logout(ctx context.Context, sid string) {
	rec, ok := s.Get(ctx, sid)
	if err := s.Delete(ctx, sid); err != nil {
		log.Printf("session logout %s: %v", sid, err)
	}
	if ok {
		go func(token string) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.api.SignOut(bgCtx, token); err != nil {
				log.Printf("remote sign-out: %v", err)
			}
		}(rec.Token)
	}
}

func (s *Store) Delete(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.rdb.Del(ctx, sessionKey(sid)).Err()
}

func (s *Store) save(ctx context.Context, sid string, rec models.Session) {
	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("session encode %s: %v", sid, err)
		return
	}
	if err := s.rdb.Set(ctx, sessionKey(sid), data, redis.KeepTTL).Err(); err != nil {
		log.Printf("session save %s: %v", sid, err)
	}
}

// TokenTTL derives the session lifetime from the bearer token's exp claim
// when it parses as a JWT. The signature is the remote API's business, so
// the claim is read unverified. Tokens without a usable exp get the
// configured default.
func TokenTTL(token string, def time.Duration) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return def
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return def
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl <= 0 {
		return def
	}
	return ttl
}
