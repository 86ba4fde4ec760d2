package remote

import (
	"context"
	"fmt"
	"net/http"

	"societyWeb/internal/models"
)

func (c *Client) Tenants(ctx context.Context, token string) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := c.do(ctx, http.MethodGet, "/admin/tenants", token, nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (c *Client) CreateTenant(ctx context.Context, token string, req models.TenantRequest) (models.Tenant, error) {
	var tenant models.Tenant
	if err := c.do(ctx, http.MethodPost, "/admin/tenants", token, req, &tenant); err != nil {
		return models.Tenant{}, err
	}
	return tenant, nil
}

func (c *Client) UpdateTenant(ctx context.Context, token string, id int, req models.TenantRequest) (models.Tenant, error) {
	var tenant models.Tenant
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/tenants/%d", id), token, req, &tenant); err != nil {
		return models.Tenant{}, err
	}
	return tenant, nil
}

func (c *Client) Flats(ctx context.Context, token string) ([]models.Flat, error) {
	var flats []models.Flat
	if err := c.do(ctx, http.MethodGet, "/admin/flats", token, nil, &flats); err != nil {
		return nil, err
	}
	return flats, nil
}

func (c *Client) CreateFlat(ctx context.Context, token string, req models.FlatRequest) (models.Flat, error) {
	var flat models.Flat
	if err := c.do(ctx, http.MethodPost, "/admin/flats", token, req, &flat); err != nil {
		return models.Flat{}, err
	}
	return flat, nil
}

func (c *Client) AssignFlat(ctx context.Context, token string, flatID, tenantID int) error {
	body := struct {
		TenantID int `json:"tenantId"`
	}{TenantID: tenantID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/flats/%d/assign", flatID), token, body, nil)
}
