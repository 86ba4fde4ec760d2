package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"societyWeb/internal/models"
)

func TestMe_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "name": "Asel", "email": "a@example.com"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	user, err := c.Me(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("authorization header mismatch: %q", gotAuth)
	}
	if user.ID != 7 {
		t.Errorf("user id mismatch: %d", user.ID)
	}
	if user.Role != models.RoleCitizen {
		t.Errorf("expected missing role to default to citizen, got %q", user.Role)
	}
}

func TestDo_NormalizesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invoice already paid"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	_, err := c.InvoiceByID(context.Background(), "tok", 4)
	if err == nil {
		t.Fatal("expected an error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status mismatch: %d", apiErr.StatusCode)
	}
	if apiErr.Message != "invoice already paid" {
		t.Errorf("message mismatch: %q", apiErr.Message)
	}
}

func TestDo_NormalizesPlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("something broke\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	_, err := c.Me(context.Background(), "tok")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "something broke" {
		t.Errorf("message mismatch: %q", apiErr.Message)
	}
}

func TestDo_AuthFailureFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "token expired"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	fired := 0
	c.SetAuthFailureHook(func(ctx context.Context) { fired++ })

	_, err := c.Me(context.Background(), "stale")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsAuthError(err) {
		t.Errorf("expected auth error, got %v", err)
	}
	if fired != 1 {
		t.Errorf("expected hook to fire once, fired %d times", fired)
	}
}

func TestDo_NonAuthErrorDoesNotFireHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	fired := 0
	c.SetAuthFailureHook(func(ctx context.Context) { fired++ })

	if _, err := c.Me(context.Background(), "tok"); err == nil {
		t.Fatal("expected an error")
	}
	if fired != 0 {
		t.Errorf("hook must not fire on non-auth errors, fired %d times", fired)
	}
}

func TestCreateOrder_ConvertsRupeesToPaise(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"orderId": "order_abc", "amount": 1499.50, "razorpayKeyId": "rzp_test_key", "invoiceId": 12}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	order, err := c.CreateOrder(context.Background(), "tok", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.AmountPaise != 149950 {
		t.Errorf("paise mismatch: %d", order.AmountPaise)
	}
	if order.Currency != "INR" {
		t.Errorf("expected default currency INR, got %q", order.Currency)
	}
}

func TestCreateOrder_PrefersPaiseWhenPresent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"orderId": "order_abc", "amount": 1499.50, "amountInPaise": 149950, "currency": "INR", "razorpayKeyId": "rzp_test_key"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	order, err := c.CreateOrder(context.Background(), "tok", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.AmountPaise != 149950 {
		t.Errorf("paise mismatch: %d", order.AmountPaise)
	}
}
