package handlers

import (
	"net/http"

	"societyWeb/internal/checkout"
	"societyWeb/internal/services"
)

type BillingHandler struct {
	Service *services.BillingService
	Bridge  *checkout.Bridge
}

// ListInvoices returns the billing view. Each row carries a Payable flag and,
// when a checkout flow is already open for it, PaymentInProgress so the pay
// control stays disabled.
func (h *BillingHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	rec, sid, _ := currentSession(r)

	views, err := h.Service.ListInvoices(r.Context(), rec.Token)
	if err != nil {
		writeError(w, err)
		return
	}

	type row struct {
		services.InvoiceView
		PaymentInProgress bool `json:"paymentInProgress"`
	}
	out := make([]row, 0, len(views))
	for _, v := range views {
		out = append(out, row{InvoiceView: v, PaymentInProgress: h.Bridge.Active(sid, v.ID)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	id, err := intParam(r, ":id")
	if err != nil {
		http.Error(w, "Invalid invoice id", http.StatusBadRequest)
		return
	}

	view, err := h.Service.GetInvoice(r.Context(), rec.Token, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
