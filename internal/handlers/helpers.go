package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
	"societyWeb/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error onto an HTTP response. Validation failures and
// remote API errors keep their own messages; everything else collapses to a
// generic failure so internals do not leak.
func writeError(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Error()})
		return
	}

	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, map[string]string{"error": apiErr.Message})
		return
	}

	switch {
	case errors.Is(err, models.ErrNothingOutstanding):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "This invoice has no outstanding balance."})
	case errors.Is(err, models.ErrCheckoutActive):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "A payment for this invoice is already in progress."})
	case errors.Is(err, models.ErrAcceptInFlight):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "Agreement acceptance is already in progress."})
	case errors.Is(err, models.ErrOnboardingComplete):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "Onboarding is already completed."})
	case errors.Is(err, models.ErrGatewayConfig):
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Payments are not configured. Please contact the society office."})
	case errors.Is(err, models.ErrCheckoutNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Checkout session not found."})
	case errors.Is(err, models.ErrEventClosed):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "This event is no longer open for RSVP."})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong. Please try again."})
	}
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.URL.Query().Get(name))
}

// currentSession pulls the session attached by the middleware.
func currentSession(r *http.Request) (models.Session, string, bool) {
	rec, ok := session.FromContext(r.Context())
	sid, _ := session.SIDFromContext(r.Context())
	return rec, sid, ok
}
