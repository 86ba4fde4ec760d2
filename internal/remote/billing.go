package remote

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"societyWeb/internal/models"
)

func (c *Client) MyInvoices(ctx context.Context, token string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.do(ctx, http.MethodGet, "/billing/my-invoices", token, nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) InvoiceByID(ctx context.Context, token string, id int) (models.Invoice, error) {
	var inv models.Invoice
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/billing/my-invoices/%d", id), token, nil, &inv); err != nil {
		return models.Invoice{}, err
	}
	return inv, nil
}

// CreateOrder asks the billing backend to open a gateway order for the
// invoice's outstanding amount. The backend answers with either a rupee
// amount or a paise amount; the result always carries paise, since the
// checkout widget only accepts the smallest unit.
func (c *Client) CreateOrder(ctx context.Context, token string, invoiceID int) (models.PaymentOrder, error) {
	var resp struct {
		OrderID       string  `json:"orderId"`
		Amount        float64 `json:"amount"`
		AmountInPaise int64   `json:"amountInPaise"`
		Currency      string  `json:"currency"`
		RazorpayKeyID string  `json:"razorpayKeyId"`
		InvoiceID     int     `json:"invoiceId"`
	}
	path := fmt.Sprintf("/billing/my-invoices/%d/create-order", invoiceID)
	if err := c.do(ctx, http.MethodPost, path, token, nil, &resp); err != nil {
		return models.PaymentOrder{}, err
	}

	paise := resp.AmountInPaise
	if paise == 0 && resp.Amount > 0 {
		paise = int64(math.Round(resp.Amount * 100))
	}
	currency := resp.Currency
	if currency == "" {
		currency = "INR"
	}
	return models.PaymentOrder{
		OrderID:     resp.OrderID,
		AmountPaise: paise,
		Currency:    currency,
		GatewayKey:  resp.RazorpayKeyID,
		InvoiceID:   resp.InvoiceID,
	}, nil
}

// VerifyPayment forwards the gateway identifiers for server-side signature
// verification. A failure here does NOT mean the payment failed.
func (c *Client) VerifyPayment(ctx context.Context, token string, proof models.PaymentProof) error {
	var resp struct {
		Success bool `json:"success"`
	}
	return c.do(ctx, http.MethodPost, "/billing/verify-payment", token, proof, &resp)
}
