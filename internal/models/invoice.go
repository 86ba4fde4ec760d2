package models

import "time"

// Invoice statuses as the billing backend reports them.
const (
	InvoicePending       = "PENDING"
	InvoicePartiallyPaid = "PARTIALLY_PAID"
	InvoicePaid          = "PAID"
	InvoiceOverdue       = "OVERDUE"
)

// Invoice is server-owned billing state. Outstanding drives whether a pay
// action is offered at all.
type Invoice struct {
	ID          int       `json:"id"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Outstanding float64   `json:"outstanding"`
	TotalPaid   float64   `json:"totalPaid"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	Payments    []Payment `json:"payments,omitempty"`
}

// Payable reports whether the invoice still has an outstanding balance.
func (i Invoice) Payable() bool {
	return i.Outstanding > 0
}

type Payment struct {
	ID        string    `json:"id"`
	InvoiceID int       `json:"invoiceId"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	PaidAt    time.Time `json:"paidAt"`
}

// PaymentOrder is the normalized create-order response. AmountPaise is
// always the smallest-unit value the gateway widget requires.
type PaymentOrder struct {
	OrderID     string `json:"orderId"`
	AmountPaise int64  `json:"amountInPaise"`
	Currency    string `json:"currency"`
	GatewayKey  string `json:"razorpayKeyId"`
	InvoiceID   int    `json:"invoiceId"`
}

// PaymentProof carries the gateway identifiers posted back by the checkout
// widget on success; they are forwarded verbatim to verify-payment.
type PaymentProof struct {
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpaySignature string `json:"razorpaySignature"`
}
