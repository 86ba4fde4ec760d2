package handlers

import (
	"encoding/json"
	"net/http"

	"societyWeb/internal/models"
	"societyWeb/internal/services"
)

type AdminHandler struct {
	Service *services.AdminService
}

func (h *AdminHandler) Tenants(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	tenants, err := h.Service.ListTenants(r.Context(), rec.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

func (h *AdminHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	var req models.TenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	tenant, err := h.Service.CreateTenant(r.Context(), rec.Token, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tenant)
}

func (h *AdminHandler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	id, err := intParam(r, ":id")
	if err != nil {
		http.Error(w, "Invalid tenant id", http.StatusBadRequest)
		return
	}
	var req models.TenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	tenant, err := h.Service.UpdateTenant(r.Context(), rec.Token, id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *AdminHandler) Flats(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	flats, err := h.Service.ListFlats(r.Context(), rec.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flats)
}

func (h *AdminHandler) CreateFlat(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	var req models.FlatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	flat, err := h.Service.CreateFlat(r.Context(), rec.Token, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, flat)
}

func (h *AdminHandler) AssignFlat(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	flatID, err := intParam(r, ":id")
	if err != nil {
		http.Error(w, "Invalid flat id", http.StatusBadRequest)
		return
	}
	var req struct {
		TenantID int `json:"tenantId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.AssignFlat(r.Context(), rec.Token, flatID, req.TenantID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Flat assigned"})
}
