package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"societyWeb/internal/remote"
)

func TestListInvoices_PayableOnlyWithOutstanding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "amount": 5000, "outstanding": 5000, "status": "PENDING", "dueDate": "2025-11-10T00:00:00Z"},
			{"id": 2, "amount": 5000, "outstanding": 0, "totalPaid": 5000, "status": "PAID", "dueDate": "2025-10-10T00:00:00Z"},
			{"id": 3, "amount": 5000, "outstanding": 1200, "totalPaid": 3800, "status": "PARTIALLY_PAID", "dueDate": "2025-09-10T00:00:00Z"}
		]`))
	}))
	defer srv.Close()

	s := &BillingService{API: remote.NewClient(srv.URL, 5*time.Second, nil)}
	views, err := s.ListInvoices(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 invoices, got %d", len(views))
	}
	// sorted by due date, newest first
	if views[0].ID != 1 || views[1].ID != 2 || views[2].ID != 3 {
		t.Errorf("order mismatch: %d %d %d", views[0].ID, views[1].ID, views[2].ID)
	}
	for _, v := range views {
		if v.ID == 2 && v.Payable {
			t.Error("fully paid invoice must not be payable")
		}
		if v.ID != 2 && !v.Payable {
			t.Errorf("invoice %d with outstanding balance must be payable", v.ID)
		}
	}
}
