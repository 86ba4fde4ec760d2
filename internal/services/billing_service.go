package services

import (
	"context"

	"golang.org/x/exp/slices"

	"societyWeb/internal/models"
	"societyWeb/internal/remote"
)

type BillingService struct {
	API *remote.Client
}

// InvoiceView is an invoice plus the derived pay-action flag. Payable is
// computed here, once, so no screen re-derives it from raw amounts.
type InvoiceView struct {
	models.Invoice
	Payable bool `json:"payable"`
}

func (s *BillingService) ListInvoices(ctx context.Context, token string) ([]InvoiceView, error) {
	invoices, err := s.API.MyInvoices(ctx, token)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(invoices, func(a, b models.Invoice) int {
		return b.DueDate.Compare(a.DueDate)
	})
	views := make([]InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, InvoiceView{Invoice: inv, Payable: inv.Payable()})
	}
	return views, nil
}

func (s *BillingService) GetInvoice(ctx context.Context, token string, id int) (InvoiceView, error) {
	inv, err := s.API.InvoiceByID(ctx, token, id)
	if err != nil {
		return InvoiceView{}, err
	}
	return InvoiceView{Invoice: inv, Payable: inv.Payable()}, nil
}
