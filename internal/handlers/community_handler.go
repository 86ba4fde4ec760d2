package handlers

import (
	"encoding/json"
	"net/http"

	"societyWeb/internal/services"
)

type CommunityHandler struct {
	Service *services.CommunityService
}

func (h *CommunityHandler) Announcements(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	items, err := h.Service.ListAnnouncements(r.Context(), rec.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CommunityHandler) Events(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	events, err := h.Service.ListEvents(r.Context(), rec.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *CommunityHandler) RSVP(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	id, err := intParam(r, ":id")
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}

	var req struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.RSVP(r.Context(), rec.Token, id, req.Response); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "RSVP recorded"})
}
