package checkout

import "testing"

func TestParseMessage_Success(t *testing.T) {
	raw := []byte(`{"event": "SUCCESS", "payload": {"razorpay_payment_id": "pay_1", "razorpay_order_id": "order_1", "razorpay_signature": "sig"}}`)
	msg, err := ParseMessage(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Event != EventSuccess {
		t.Errorf("event mismatch: %q", msg.Event)
	}
	proof := msg.Payload.Proof()
	if proof.RazorpayPaymentID != "pay_1" || proof.RazorpayOrderID != "order_1" || proof.RazorpaySignature != "sig" {
		t.Errorf("proof mismatch: %+v", proof)
	}
}

func TestParseMessage_Dismiss(t *testing.T) {
	msg, err := ParseMessage([]byte(`{"event": "DISMISS"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Event != EventDismiss {
		t.Errorf("event mismatch: %q", msg.Event)
	}
}

func TestParseMessage_Malformed(t *testing.T) {
	if _, err := ParseMessage([]byte(`{not json`)); err == nil {
		t.Fatal("expected an error for malformed json")
	}
}

func TestParseMessage_UnknownEvent(t *testing.T) {
	if _, err := ParseMessage([]byte(`{"event": "EXPLODED"}`)); err == nil {
		t.Fatal("expected an error for an unknown event")
	}
}
