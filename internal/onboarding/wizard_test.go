package onboarding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
	"societyWeb/internal/session"
)

type recordingNotifier struct {
	ch chan models.Notification
}

func (n *recordingNotifier) Notify(sid string, msg models.Notification) {
	n.ch <- msg
}

// deadStore returns a session store whose redis is unreachable; UpdateUser
// degrades to a no-op, which is all these tests need.
func deadStore(api *remote.Client) *session.Store {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	return session.NewStore(rdb, api, time.Hour)
}

func validConsents() models.ConsentFlags {
	return models.ConsentFlags{AgreeTerms: true, AgreeRentPolicy: true, AgreeDataUse: true, ConfirmAccuracy: true}
}

func TestSubmitKYC_MissingMandatoryFieldStaysLocal(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer srv.Close()

	api := remote.NewClient(srv.URL, 5*time.Second, nil)
	w := NewWizard(api, deadStore(api), nil, "test", "123456", nil)

	form := models.KYCForm{
		FullName:         "Ravi Kumar",
		Gender:           "male",
		Phone:            "9876543210",
		Email:            "ravi@example.com",
		PermanentAddress: "12 MG Road, Pune",
		IDType:           "aadhaar",
		IDNumber:         "1234-5678-9012",
		// DateOfBirth left empty on purpose
	}
	_, err := w.SubmitKYC(context.Background(), "tok", form, nil)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !models.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n := atomic.LoadInt32(&requests); n != 0 {
		t.Errorf("expected no network calls, server saw %d", n)
	}
}

func TestAcceptAgreement_ValidatesBeforeNetwork(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer srv.Close()

	api := remote.NewClient(srv.URL, 5*time.Second, nil)
	w := NewWizard(api, deadStore(api), nil, "test", "123456", nil)

	consents := validConsents()
	consents.AgreeDataUse = false
	if _, err := w.AcceptAgreement(context.Background(), "tok", "sid", "123456", consents); !models.IsValidation(err) {
		t.Errorf("expected validation error for unchecked consent, got %v", err)
	}
	if _, err := w.AcceptAgreement(context.Background(), "tok", "sid", "   ", validConsents()); !models.IsValidation(err) {
		t.Errorf("expected validation error for empty otp, got %v", err)
	}
	if n := atomic.LoadInt32(&requests); n != 0 {
		t.Errorf("expected no network calls, server saw %d", n)
	}
}

func TestAcceptAgreement_SingleFlightPerSession(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/tenant/onboarding", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"onboardingStatus": "kyc_pending", "kycStatus": "verified"}`))
	})
	var enteredOnce sync.Once
	mux.HandleFunc("/tenant/agreement/accept", func(w http.ResponseWriter, r *http.Request) {
		enteredOnce.Do(func() { close(entered) })
		<-release
		w.Write([]byte(`{"success": true}`))
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1, "name": "Ravi", "email": "r@example.com", "role": "PG_TENANT"}`))
	})
	mux.HandleFunc("/documents/generate", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "ok"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	api := remote.NewClient(srv.URL, 10*time.Second, nil)
	w := NewWizard(api, deadStore(api), nil, "test", "123456", nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := w.AcceptAgreement(context.Background(), "tok", "sid", "123456", validConsents())
		firstDone <- err
	}()

	<-entered
	_, err := w.AcceptAgreement(context.Background(), "tok", "sid", "123456", validConsents())
	if !errors.Is(err, models.ErrAcceptInFlight) {
		t.Errorf("expected in-flight rejection, got %v", err)
	}

	close(release)
	if err := <-firstDone; err != nil {
		t.Fatalf("first accept failed: %v", err)
	}

	// the slot frees up once the first call finishes
	if _, err := w.AcceptAgreement(context.Background(), "tok", "sid", "123456", validConsents()); err != nil {
		t.Errorf("expected accept to be allowed again, got %v", err)
	}
}

func TestAcceptAgreement_DocumentFailureDoesNotRollBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tenant/onboarding", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"onboardingStatus": "kyc_pending", "kycStatus": "verified"}`))
	})
	mux.HandleFunc("/tenant/agreement/accept", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1, "name": "Ravi", "email": "r@example.com", "role": "PG_TENANT", "agreementAccepted": true}`))
	})
	mux.HandleFunc("/documents/generate", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "template store offline"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	api := remote.NewClient(srv.URL, 5*time.Second, nil)
	notifier := &recordingNotifier{ch: make(chan models.Notification, 1)}
	w := NewWizard(api, deadStore(api), notifier, "test", "123456", nil)

	res, err := w.AcceptAgreement(context.Background(), "tok", "sid", "123456", validConsents())
	if err != nil {
		t.Fatalf("accept must succeed despite document failure: %v", err)
	}
	if res.Redirect != "/dashboard" {
		t.Errorf("redirect mismatch: %q", res.Redirect)
	}

	select {
	case n := <-notifier.ch:
		if n.Type != models.NotifyWarning {
			t.Errorf("expected a warning notification, got type %q", n.Type)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("expected a warning notification about document generation")
	}
}

func TestSubmitKYC_CompletedOnboardingRejected(t *testing.T) {
	var submits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/tenant/onboarding", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"onboardingStatus": "completed", "kycStatus": "verified"}`))
	})
	mux.HandleFunc("/tenant/ekyc", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&submits, 1)
		w.Write([]byte(`{"success": true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	api := remote.NewClient(srv.URL, 5*time.Second, nil)
	w := NewWizard(api, deadStore(api), nil, "test", "123456", nil)

	form := models.KYCForm{
		FullName:         "Ravi Kumar",
		DateOfBirth:      "1995-04-12",
		Gender:           "male",
		Phone:            "9876543210",
		Email:            "ravi@example.com",
		PermanentAddress: "12 MG Road, Pune",
		IDType:           "aadhaar",
		IDNumber:         "1234-5678-9012",
	}
	_, err := w.SubmitKYC(context.Background(), "tok", form, nil)
	if !errors.Is(err, models.ErrOnboardingComplete) {
		t.Fatalf("expected completed-onboarding rejection, got %v", err)
	}
	if n := atomic.LoadInt32(&submits); n != 0 {
		t.Errorf("ekyc endpoint must not be called for a completed user, saw %d", n)
	}
}

func TestAcceptAgreement_CompletedOnboardingRejected(t *testing.T) {
	var accepts int32
	mux := http.NewServeMux()
	mux.HandleFunc("/tenant/onboarding", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"onboardingStatus": "completed", "kycStatus": "verified"}`))
	})
	mux.HandleFunc("/tenant/agreement/accept", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&accepts, 1)
		w.Write([]byte(`{"success": true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	api := remote.NewClient(srv.URL, 5*time.Second, nil)
	w := NewWizard(api, deadStore(api), nil, "test", "123456", nil)

	_, err := w.AcceptAgreement(context.Background(), "tok", "sid", "123456", validConsents())
	if !errors.Is(err, models.ErrOnboardingComplete) {
		t.Fatalf("expected completed-onboarding rejection, got %v", err)
	}
	if n := atomic.LoadInt32(&accepts); n != 0 {
		t.Errorf("accept endpoint must not be called for a completed user, saw %d", n)
	}
}

func TestState_ReportsCompletionAndTestOTP(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tenant/onboarding", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"propertyName": "Green Nest PG", "onboardingStatus": "completed", "kycStatus": "verified"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	api := remote.NewClient(srv.URL, 5*time.Second, nil)
	w := NewWizard(api, deadStore(api), nil, "staging", "123456", nil)

	st, err := w.State(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.Completed {
		t.Error("expected completed onboarding to be reported")
	}
	if st.Step != StepAgreement {
		t.Errorf("step mismatch: %q", st.Step)
	}
	if st.TestOTP != "123456" {
		t.Errorf("expected test otp hint outside production, got %q", st.TestOTP)
	}

	w2 := NewWizard(api, deadStore(api), nil, "production", "123456", nil)
	st2, err := w2.State(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st2.TestOTP != "" {
		t.Error("test otp must not leak in production")
	}
}
