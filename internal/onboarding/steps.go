package onboarding

import "societyWeb/internal/models"

// Wizard steps in order. A step only advances forward after the server
// confirms the current step's submission; backward navigation is free.
const (
	StepPGDetails = "pg_details"
	StepEKYC      = "ekyc"
	StepAgreement = "agreement"
)

var transitions = map[string]map[string]struct{}{
	StepPGDetails: {StepEKYC: {}},
	StepEKYC:      {StepPGDetails: {}, StepAgreement: {}},
	StepAgreement: {StepPGDetails: {}, StepEKYC: {}},
}

// CanTransition returns whether the wizard can move from one step to the
// other. Forward moves are only adjacent; the server-confirmation gate for
// them lives in the wizard, not here.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// DeriveStep computes the starting step purely from the server-reported
// status flags. The client never persists step position; re-entry always
// re-derives it from server truth.
func DeriveStep(kycStatus, onboardingStatus string) string {
	if kycStatus == models.KYCStatusVerified {
		return StepAgreement
	}
	if onboardingStatus == models.OnboardingKYCPending {
		return StepEKYC
	}
	return StepPGDetails
}
