package onboarding

import (
	"testing"

	"societyWeb/internal/models"
)

func TestDeriveStep(t *testing.T) {
	if got := DeriveStep(models.KYCStatusVerified, models.OnboardingKYCPending); got != StepAgreement {
		t.Errorf("verified kyc must start at agreement, got %q", got)
	}
	if got := DeriveStep(models.KYCStatusPending, models.OnboardingKYCPending); got != StepEKYC {
		t.Errorf("kyc_pending must start at ekyc, got %q", got)
	}
	if got := DeriveStep(models.KYCStatusPending, models.OnboardingNotStarted); got != StepPGDetails {
		t.Errorf("fresh onboarding must start at pg_details, got %q", got)
	}
	if got := DeriveStep("", ""); got != StepPGDetails {
		t.Errorf("empty flags must start at pg_details, got %q", got)
	}
	// verified wins over any onboarding status
	if got := DeriveStep(models.KYCStatusVerified, models.OnboardingNotStarted); got != StepAgreement {
		t.Errorf("verified kyc must start at agreement regardless of status, got %q", got)
	}
}

func TestCanTransition(t *testing.T) {
	if !CanTransition(StepPGDetails, StepEKYC) {
		t.Fatal("expected pg_details -> ekyc to be allowed")
	}
	if CanTransition(StepPGDetails, StepAgreement) {
		t.Fatal("unexpected skip over ekyc allowed")
	}
	if !CanTransition(StepAgreement, StepPGDetails) {
		t.Fatal("expected backward navigation to be free")
	}
	if !CanTransition(StepEKYC, StepEKYC) {
		t.Fatal("expected staying on a step to be allowed")
	}
	if CanTransition("bogus", StepEKYC) {
		t.Fatal("unexpected transition from unknown step")
	}
}
