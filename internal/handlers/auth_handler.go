package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
	"societyWeb/internal/session"
)

type AuthHandler struct {
	API        *remote.Client
	Sessions   *session.Store
	CookieName string
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	auth, err := h.API.SignIn(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	sid, err := h.Sessions.Login(r.Context(), auth.User, auth.Token)
	if err != nil {
		log.Printf("session create: %v", err)
		http.Error(w, "Could not create session", http.StatusInternalServerError)
		return
	}

	h.setCookie(w, sid)
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": auth.User})
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}

	auth, err := h.API.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	sid, err := h.Sessions.Login(r.Context(), auth.User, auth.Token)
	if err != nil {
		log.Printf("session create: %v", err)
		http.Error(w, "Could not create session", http.StatusInternalServerError)
		return
	}

	h.setCookie(w, sid)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"user": auth.User})
}

// SignOut always succeeds from the browser's point of view. Remote
// invalidation runs in the background inside the store.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.CookieName); err == nil {
		h.Sessions.Logout(r.Context(), c.Value)
	}
	h.clearCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

// Me restores the session on page load: the persisted token is re-validated
// against the identity endpoint, and a stale one comes back as a plain 401.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(h.CookieName)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		return
	}

	ctx := session.ContextWith(r.Context(), c.Value, models.Session{})
	rec, ok := h.Sessions.Restore(ctx, c.Value)
	if !ok {
		h.clearCookie(w)
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": rec.User})
}
