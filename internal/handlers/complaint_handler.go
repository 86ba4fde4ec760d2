package handlers

import (
	"encoding/json"
	"net/http"

	"societyWeb/internal/models"
	"societyWeb/internal/services"
)

type ComplaintHandler struct {
	Service *services.ComplaintService
}

func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	filter := services.ComplaintFilter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}
	complaints, err := h.Service.ListComplaints(r.Context(), rec.Token, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaints)
}

func (h *ComplaintHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	id, err := intParam(r, ":id")
	if err != nil {
		http.Error(w, "Invalid complaint id", http.StatusBadRequest)
		return
	}
	complaint, err := h.Service.GetComplaint(r.Context(), rec.Token, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaint)
}

func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	var req models.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	complaint, err := h.Service.CreateComplaint(r.Context(), rec.Token, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, complaint)
}

func (h *ComplaintHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	id, err := intParam(r, ":id")
	if err != nil {
		http.Error(w, "Invalid complaint id", http.StatusBadRequest)
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	comment, err := h.Service.AddComment(r.Context(), rec.Token, id, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
