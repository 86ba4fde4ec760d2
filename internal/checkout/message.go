package checkout

import (
	"encoding/json"
	"fmt"

	"societyWeb/internal/models"
)

// Events the embedded payment surface may post back to the host. The
// channel is one-way; the host never sends anything into the surface.
const (
	EventSuccess = "SUCCESS"
	EventFailed  = "FAILED"
	EventDismiss = "DISMISS"
)

// Message is the tagged union posted by the checkout page.
type Message struct {
	Event   string         `json:"event"`
	Payload MessagePayload `json:"payload"`
}

// MessagePayload carries the gateway identifiers on SUCCESS and the failure
// description on FAILED. Field names follow the widget's own casing.
type MessagePayload struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	Code              string `json:"code"`
	Description       string `json:"description"`
}

// Proof converts the payload into the verify-payment request body.
func (p MessagePayload) Proof() models.PaymentProof {
	return models.PaymentProof{
		RazorpayPaymentID: p.RazorpayPaymentID,
		RazorpayOrderID:   p.RazorpayOrderID,
		RazorpaySignature: p.RazorpaySignature,
	}
}

// ParseMessage decodes a posted message. Callers treat any error here as a
// DISMISS: the surface is closed and the user may retry.
func ParseMessage(raw []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Message{}, fmt.Errorf("checkout: malformed message: %w", err)
	}
	switch msg.Event {
	case EventSuccess, EventFailed, EventDismiss:
		return msg, nil
	default:
		return Message{}, fmt.Errorf("checkout: unknown event %q", msg.Event)
	}
}
