package remote

import (
	"context"
	"net/http"

	"societyWeb/internal/models"
)

// UpdateProfile applies the change server-side. Callers re-fetch /me for
// the authoritative record instead of patching locally.
func (c *Client) UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, "/profile", token, update, nil)
}
