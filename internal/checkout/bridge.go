package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
)

// Checkout session statuses.
const (
	StatusPending        = "pending"
	StatusAwaitingResult = "awaiting_result"
	StatusVerifying      = "verifying"
	StatusSucceeded      = "succeeded"
	StatusFailed         = "failed"
	StatusDismissed      = "dismissed"
)

var transitions = map[string]map[string]struct{}{
	StatusPending:        {StatusAwaitingResult: {}, StatusFailed: {}, StatusDismissed: {}},
	StatusAwaitingResult: {StatusVerifying: {}, StatusFailed: {}, StatusDismissed: {}},
	StatusVerifying:      {StatusSucceeded: {}, StatusFailed: {}},
	StatusSucceeded:      {},
	StatusFailed:         {},
	StatusDismissed:      {},
}

func canTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

func isTerminal(status string) bool {
	return status == StatusSucceeded || status == StatusFailed || status == StatusDismissed
}

// Prefill is the contact data handed to the payment widget.
type Prefill struct {
	Name    string
	Email   string
	Contact string
}

// Session is one ephemeral checkout flow. It is never persisted; the
// registry discards it after a terminal status and the page has closed.
type Session struct {
	ID        string              `json:"id"`
	SID       string              `json:"-"`
	InvoiceID int                 `json:"invoiceId"`
	Order     models.PaymentOrder `json:"order"`
	Prefill   Prefill             `json:"-"`
	Status    string              `json:"status"`
	Message   string              `json:"message,omitempty"`
	// SupportRequired marks a verification failure: the money may have been
	// captured, so the user must contact support instead of retrying.
	SupportRequired bool      `json:"supportRequired,omitempty"`
	CreatedAt       time.Time `json:"-"`
}

// Bridge mediates the embedded payment widget. At most one checkout flow is
// active per invoice per session; the pay action stays blocked while an
// order call, a verification call, or an open surface is pending.
type Bridge struct {
	api    *remote.Client
	logger *slog.Logger
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	active   map[string]string
}

func NewBridge(api *remote.Client, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{
		api:      api,
		logger:   logger,
		ttl:      30 * time.Minute,
		sessions: make(map[string]*Session),
		active:   make(map[string]string),
	}
}

func activeKey(sid string, invoiceID int) string {
	return fmt.Sprintf("%s|%d", sid, invoiceID)
}

// Start opens a checkout flow: precondition checks, order creation, then an
// ephemeral session the page endpoint renders. A create-order response
// without an order id or gateway key fails fast with ErrGatewayConfig and
// never opens the surface.
func (b *Bridge) Start(ctx context.Context, token, sid string, user models.UserSummary, invoiceID int) (Session, error) {
	b.mu.Lock()
	b.pruneLocked()
	if id, ok := b.active[activeKey(sid, invoiceID)]; ok {
		if cs, found := b.sessions[id]; found && !isTerminal(cs.Status) {
			b.mu.Unlock()
			return Session{}, models.ErrCheckoutActive
		}
		delete(b.active, activeKey(sid, invoiceID))
	}
	b.mu.Unlock()

	inv, err := b.api.InvoiceByID(ctx, token, invoiceID)
	if err != nil {
		return Session{}, err
	}
	if !inv.Payable() {
		return Session{}, models.ErrNothingOutstanding
	}

	order, err := b.api.CreateOrder(ctx, token, invoiceID)
	if err != nil {
		return Session{}, err
	}
	if order.OrderID == "" || order.GatewayKey == "" {
		b.logger.Error("create-order response missing gateway configuration", "invoice", invoiceID)
		return Session{}, models.ErrGatewayConfig
	}

	cs := &Session{
		ID:        uuid.NewString(),
		SID:       sid,
		InvoiceID: invoiceID,
		Order:     order,
		Prefill:   Prefill{Name: user.Name, Email: user.Email, Contact: user.Phone},
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}

	b.mu.Lock()
	if id, ok := b.active[activeKey(sid, invoiceID)]; ok {
		if old, found := b.sessions[id]; found && !isTerminal(old.Status) {
			b.mu.Unlock()
			return Session{}, models.ErrCheckoutActive
		}
	}
	b.sessions[cs.ID] = cs
	b.active[activeKey(sid, invoiceID)] = cs.ID
	b.mu.Unlock()

	return *cs, nil
}

// Surface marks the embedded page as served and returns the data the
// template needs.
func (b *Bridge) Surface(id, sid string) (Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cs, ok := b.sessions[id]
	if !ok || cs.SID != sid {
		return Session{}, models.ErrCheckoutNotFound
	}
	if cs.Status == StatusPending {
		cs.Status = StatusAwaitingResult
	}
	if isTerminal(cs.Status) {
		return Session{}, models.ErrCheckoutNotFound
	}
	return *cs, nil
}

// HandleMessage processes one posted {event, payload} message. A message
// that does not parse is treated as a dismissal. Late messages for a flow
// already settled are ignored.
func (b *Bridge) HandleMessage(ctx context.Context, token, id, sid string, raw []byte) (Session, error) {
	b.mu.Lock()
	cs, ok := b.sessions[id]
	if !ok || cs.SID != sid {
		b.mu.Unlock()
		return Session{}, models.ErrCheckoutNotFound
	}
	if isTerminal(cs.Status) || cs.Status == StatusVerifying {
		out := *cs
		b.mu.Unlock()
		return out, nil
	}

	msg, err := ParseMessage(raw)
	if err != nil {
		b.logger.Warn("checkout message did not parse, closing surface", "checkout", id, "err", err)
		b.settleLocked(cs, StatusDismissed, "", false)
		out := *cs
		b.mu.Unlock()
		return out, nil
	}

	switch msg.Event {
	case EventDismiss:
		b.settleLocked(cs, StatusDismissed, "", false)
		out := *cs
		b.mu.Unlock()
		return out, nil

	case EventFailed:
		reason := msg.Payload.Description
		if reason == "" {
			reason = "Payment failed. You can try again."
		}
		b.settleLocked(cs, StatusFailed, reason, false)
		out := *cs
		b.mu.Unlock()
		return out, nil

	case EventSuccess:
		// The widget's result can land before the page fetch was observed.
		if cs.Status == StatusPending {
			cs.Status = StatusAwaitingResult
		}
		if !canTransition(cs.Status, StatusVerifying) {
			out := *cs
			b.mu.Unlock()
			return out, nil
		}
		cs.Status = StatusVerifying
		proof := msg.Payload.Proof()
		b.mu.Unlock()

		verifyErr := b.api.VerifyPayment(ctx, token, proof)

		b.mu.Lock()
		if verifyErr != nil {
			b.logger.Error("payment verification failed", "checkout", id, "order", proof.RazorpayOrderID, "err", verifyErr)
			// The payment itself may have gone through. Do not tell the
			// user it failed, and do not let them retry into a double
			// charge.
			b.settleLocked(cs, StatusFailed,
				"Payment verification failed. Please contact support before paying again.", true)
		} else {
			b.settleLocked(cs, StatusSucceeded, "Payment received.", false)
		}
		out := *cs
		b.mu.Unlock()
		return out, nil
	}

	out := *cs
	b.mu.Unlock()
	return out, nil
}

// Status returns the flow state for the polling screen.
func (b *Bridge) Status(id, sid string) (Session, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cs, ok := b.sessions[id]
	if !ok || cs.SID != sid {
		return Session{}, false
	}
	return *cs, true
}

// Active reports whether a non-terminal flow exists for the invoice; the
// pay control stays disabled while it does.
func (b *Bridge) Active(sid string, invoiceID int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.active[activeKey(sid, invoiceID)]
	if !ok {
		return false
	}
	cs, found := b.sessions[id]
	return found && !isTerminal(cs.Status)
}

func (b *Bridge) settleLocked(cs *Session, status, message string, supportRequired bool) {
	if !canTransition(cs.Status, status) && cs.Status != status {
		return
	}
	cs.Status = status
	cs.Message = message
	cs.SupportRequired = supportRequired
	if isTerminal(status) {
		delete(b.active, activeKey(cs.SID, cs.InvoiceID))
	}
}

// pruneLocked drops sessions past their TTL so abandoned flows do not pin
// the per-invoice slot forever.
func (b *Bridge) pruneLocked() {
	cutoff := time.Now().Add(-b.ttl)
	for id, cs := range b.sessions {
		if cs.CreatedAt.Before(cutoff) {
			delete(b.sessions, id)
			if b.active[activeKey(cs.SID, cs.InvoiceID)] == id {
				delete(b.active, activeKey(cs.SID, cs.InvoiceID))
			}
		}
	}
}
