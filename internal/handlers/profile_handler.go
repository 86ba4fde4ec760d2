package handlers

import (
	"encoding/json"
	"net/http"

	"societyWeb/internal/models"
	"societyWeb/internal/services"
)

type ProfileHandler struct {
	Service *services.ProfileService
}

// Get serves the cached session user. A hard refresh goes through /me.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": rec.User})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	rec, sid, _ := currentSession(r)

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.Service.UpdateProfile(r.Context(), rec.Token, sid, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
