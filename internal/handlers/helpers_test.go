package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body["error"]
}

func TestWriteError_ValidationIs400(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, &models.ValidationError{Field: "email", Reason: "is required"})
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "email: is required" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestWriteError_RemoteMessagePassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, &remote.APIError{StatusCode: 422, Message: "OTP expired"})
	if rec.Code != 422 {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "OTP expired" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestWriteError_CheckoutConflicts(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, models.ErrCheckoutActive)
	if rec.Code != 409 {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	writeError(rec, models.ErrGatewayConfig)
	if rec.Code != 502 {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	writeError(rec, models.ErrOnboardingComplete)
	if rec.Code != 409 {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestWriteError_UnknownIsOpaque500(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, json.Unmarshal([]byte("{"), &struct{}{}))
	if rec.Code != 500 {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Something went wrong. Please try again." {
		t.Errorf("internal detail leaked: %q", msg)
	}
}
