package services

import (
	"context"
	"strings"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
)

type AdminService struct {
	API *remote.Client
}

// CanManage reports whether the role may use the tenant/flat administration
// surface. The remote API enforces this too; checking here keeps the
// round-trip local for plainly unauthorized users.
func CanManage(role string) bool {
	switch role {
	case models.RoleAdmin, models.RolePGOwner, models.RoleFlatOwner:
		return true
	}
	return false
}

func (s *AdminService) ListTenants(ctx context.Context, token string) ([]models.Tenant, error) {
	return s.API.Tenants(ctx, token)
}

func (s *AdminService) CreateTenant(ctx context.Context, token string, req models.TenantRequest) (models.Tenant, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Tenant{}, &models.ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(req.Email) == "" && strings.TrimSpace(req.Phone) == "" {
		return models.Tenant{}, &models.ValidationError{Field: "email", Reason: "email or phone is required"}
	}
	return s.API.CreateTenant(ctx, token, req)
}

func (s *AdminService) UpdateTenant(ctx context.Context, token string, id int, req models.TenantRequest) (models.Tenant, error) {
	return s.API.UpdateTenant(ctx, token, id, req)
}

func (s *AdminService) ListFlats(ctx context.Context, token string) ([]models.Flat, error) {
	return s.API.Flats(ctx, token)
}

func (s *AdminService) CreateFlat(ctx context.Context, token string, req models.FlatRequest) (models.Flat, error) {
	if strings.TrimSpace(req.Number) == "" {
		return models.Flat{}, &models.ValidationError{Field: "number", Reason: "is required"}
	}
	return s.API.CreateFlat(ctx, token, req)
}

func (s *AdminService) AssignFlat(ctx context.Context, token string, flatID, tenantID int) error {
	if flatID <= 0 || tenantID <= 0 {
		return &models.ValidationError{Field: "flatId", Reason: "flat and tenant are required"}
	}
	return s.API.AssignFlat(ctx, token, flatID, tenantID)
}
