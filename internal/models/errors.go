package models

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound    = errors.New("models: session not found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrForbidden          = errors.New("models: forbidden")

	ErrOnboardingComplete = errors.New("onboarding already completed")
	ErrAcceptInFlight     = errors.New("agreement acceptance already in progress")

	ErrNothingOutstanding = errors.New("invoice has no outstanding balance")
	ErrCheckoutActive     = errors.New("a checkout is already in progress for this invoice")
	ErrCheckoutNotFound   = errors.New("checkout session not found")
	ErrGatewayConfig      = errors.New("payment gateway is not configured")

	ErrEventClosed = errors.New("event is no longer open for rsvp")
)

// ValidationError marks a client-side validation failure caught before any
// network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
