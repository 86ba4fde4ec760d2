package remote

import (
	"context"
	"net/http"

	"societyWeb/internal/models"
)

func (c *Client) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	resp.User = normalizeUser(resp.User)
	return resp, nil
}

func (c *Client) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	resp.User = normalizeUser(resp.User)
	return resp, nil
}

// SignOut invalidates the token server-side. Best effort: callers do not
// wait on it to finish their own logout.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

// Me validates the token and returns the current user.
func (c *Client) Me(ctx context.Context, token string) (models.UserSummary, error) {
	var user models.UserSummary
	if err := c.do(ctx, http.MethodGet, "/me", token, nil, &user); err != nil {
		return models.UserSummary{}, err
	}
	return normalizeUser(user), nil
}

func normalizeUser(u models.UserSummary) models.UserSummary {
	if u.Role == "" {
		u.Role = models.RoleCitizen
	}
	return u
}
