package onboarding

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
	"societyWeb/internal/session"
)

// Notifier delivers an out-of-band message to the browser that owns the
// session, typically over the websocket channel.
type Notifier interface {
	Notify(sid string, n models.Notification)
}

// Wizard drives the tenant onboarding flow against the remote API. It owns
// nothing durable: every entry re-derives the step from server truth.
type Wizard struct {
	api         *remote.Client
	sessions    *session.Store
	notifier    Notifier
	logger      *slog.Logger
	environment string
	testOTP     string
	docTimeout  time.Duration

	mu        sync.Mutex
	accepting map[string]struct{}
}

func NewWizard(api *remote.Client, sessions *session.Store, notifier Notifier, environment, testOTP string, logger *slog.Logger) *Wizard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Wizard{
		api:         api,
		sessions:    sessions,
		notifier:    notifier,
		logger:      logger,
		environment: environment,
		testOTP:     testOTP,
		docTimeout:  30 * time.Second,
		accepting:   make(map[string]struct{}),
	}
}

// State is what the wizard screen renders: the onboarding snapshot, the
// derived step, and whether the flow is already finished (in which case the
// wizard must not be entered at all).
type State struct {
	Context   models.OnboardingContext `json:"context"`
	Step      string                   `json:"step"`
	Completed bool                     `json:"completed"`
	TestOTP   string                   `json:"testOtp,omitempty"`
}

func (w *Wizard) State(ctx context.Context, token string) (State, error) {
	oc, err := w.api.OnboardingContext(ctx, token)
	if err != nil {
		return State{}, err
	}
	st := State{
		Context:   oc,
		Step:      DeriveStep(oc.KYCStatus, oc.OnboardingStatus),
		Completed: oc.OnboardingStatus == models.OnboardingCompleted,
	}
	if w.environment != "production" {
		st.TestOTP = w.testOTP
	}
	return st, nil
}

// ValidateKYC enforces the mandatory identity fields before any network
// call is made. Occupation, company name and files stay optional.
func ValidateKYC(form models.KYCForm) error {
	required := []struct {
		field, value string
	}{
		{"fullName", form.FullName},
		{"dateOfBirth", form.DateOfBirth},
		{"gender", form.Gender},
		{"phone", form.Phone},
		{"email", form.Email},
		{"permanentAddress", form.PermanentAddress},
		{"idType", form.IDType},
		{"idNumber", form.IDNumber},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &models.ValidationError{Field: r.field, Reason: "is required"}
		}
	}
	if !strings.Contains(form.Email, "@") {
		return &models.ValidationError{Field: "email", Reason: "is not a valid email address"}
	}
	return nil
}

// guardNotCompleted re-checks server truth before a mutating wizard call.
// The remote API rejects these too; failing here keeps a completed user out
// of the flow without a doomed round-trip.
func (w *Wizard) guardNotCompleted(ctx context.Context, token string) error {
	oc, err := w.api.OnboardingContext(ctx, token)
	if err != nil {
		return err
	}
	if oc.OnboardingStatus == models.OnboardingCompleted {
		return models.ErrOnboardingComplete
	}
	return nil
}

// SubmitKYC validates, submits the multipart form, and on success re-fetches
// the onboarding context, since the server-side status flags change.
func (w *Wizard) SubmitKYC(ctx context.Context, token string, form models.KYCForm, files []remote.MultipartFile) (State, error) {
	if err := ValidateKYC(form); err != nil {
		return State{}, err
	}
	if len(files) > 3 {
		return State{}, &models.ValidationError{Field: "files", Reason: "at most three uploads are allowed"}
	}
	if err := w.guardNotCompleted(ctx, token); err != nil {
		return State{}, err
	}
	if err := w.api.SubmitKYC(ctx, token, form, files); err != nil {
		return State{}, err
	}
	return w.State(ctx, token)
}

func (w *Wizard) AgreementPreview(ctx context.Context, token string) (string, error) {
	return w.api.AgreementPreview(ctx, token)
}

// AcceptResult is returned to the wizard screen after a successful accept.
type AcceptResult struct {
	Redirect string `json:"redirect"`
}

// AcceptAgreement runs the terminal step: all four consents, a non-empty
// OTP, one in-flight call per session. On success the cached user is
// refreshed from /me and document generation is triggered without gating
// the completed transition.
func (w *Wizard) AcceptAgreement(ctx context.Context, token, sid, otp string, consents models.ConsentFlags) (AcceptResult, error) {
	if !consents.All() {
		return AcceptResult{}, &models.ValidationError{Field: "consentFlags", Reason: "all four consents are required"}
	}
	if strings.TrimSpace(otp) == "" {
		return AcceptResult{}, &models.ValidationError{Field: "otp", Reason: "is required"}
	}

	w.mu.Lock()
	if _, busy := w.accepting[sid]; busy {
		w.mu.Unlock()
		return AcceptResult{}, models.ErrAcceptInFlight
	}
	w.accepting[sid] = struct{}{}
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		delete(w.accepting, sid)
		w.mu.Unlock()
	}()

	if err := w.guardNotCompleted(ctx, token); err != nil {
		return AcceptResult{}, err
	}

	if err := w.api.AcceptAgreement(ctx, token, otp, consents); err != nil {
		return AcceptResult{}, err
	}

	if user, err := w.api.Me(ctx, token); err != nil {
		w.logger.Warn("refresh user after agreement accept", "err", err)
	} else {
		w.sessions.UpdateUser(ctx, sid, user)
	}

	// Fire and forget. A generation failure is a warning, never a rollback
	// of the completed onboarding.
	go w.generateDocuments(token, sid)

	return AcceptResult{Redirect: "/dashboard"}, nil
}

func (w *Wizard) generateDocuments(token, sid string) {
	ctx, cancel := context.WithTimeout(context.Background(), w.docTimeout)
	defer cancel()

	if _, err := w.api.GenerateDocuments(ctx, token); err != nil {
		w.logger.Warn("document generation failed", "err", err)
		if w.notifier != nil {
			w.notifier.Notify(sid, models.Notification{
				Type:      models.NotifyWarning,
				Title:     "Document generation delayed",
				Body:      "Your agreement documents could not be generated right now. They will be available later from the documents page.",
				CreatedAt: time.Now().UTC(),
			})
		}
	}
}
