package handlers

import (
	"io"
	"log"
	"net/http"

	"societyWeb/internal/checkout"
	"societyWeb/internal/services"
)

const maxCheckoutMessageBytes = 64 << 10

type CheckoutHandler struct {
	Bridge  *checkout.Bridge
	Billing *services.BillingService
}

// Pay opens a checkout flow for the invoice and returns the page URL the
// browser should open. While the flow is non-terminal, a second Pay for the
// same invoice is refused.
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	rec, sid, _ := currentSession(r)

	id, err := intParam(r, ":id")
	if err != nil {
		http.Error(w, "Invalid invoice id", http.StatusBadRequest)
		return
	}

	cs, err := h.Bridge.Start(r.Context(), rec.Token, sid, rec.User, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"checkoutId": cs.ID,
		"pageUrl":    "/checkout/" + cs.ID,
	})
}

// Page serves the embedded payment surface. The page itself loads the
// gateway widget and posts one result message back to Message.
func (h *CheckoutHandler) Page(w http.ResponseWriter, r *http.Request) {
	_, sid, _ := currentSession(r)
	id := r.URL.Query().Get(":id")

	cs, err := h.Bridge.Surface(id, sid)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := checkout.RenderPage(w, cs, "/checkout/"+id+"/message", "/invoices"); err != nil {
		log.Printf("render checkout page %s: %v", id, err)
	}
}

// Message receives the single {event, payload} result posted by the page.
func (h *CheckoutHandler) Message(w http.ResponseWriter, r *http.Request) {
	rec, sid, _ := currentSession(r)
	id := r.URL.Query().Get(":id")

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxCheckoutMessageBytes))
	if err != nil {
		http.Error(w, "Could not read message", http.StatusBadRequest)
		return
	}

	cs, err := h.Bridge.HandleMessage(r.Context(), rec.Token, id, sid, raw)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

// Status reports the flow state for the invoice screen. Once verification
// succeeded, the refreshed invoice rides along so the row updates without a
// separate round-trip.
func (h *CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	rec, sid, _ := currentSession(r)
	id := r.URL.Query().Get(":id")

	cs, ok := h.Bridge.Status(id, sid)
	if !ok {
		http.NotFound(w, r)
		return
	}

	resp := map[string]interface{}{"checkout": cs}
	if cs.Status == checkout.StatusSucceeded {
		if view, err := h.Billing.GetInvoice(r.Context(), rec.Token, cs.InvoiceID); err == nil {
			resp["invoice"] = view
		} else {
			log.Printf("refresh invoice %d after payment: %v", cs.InvoiceID, err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
