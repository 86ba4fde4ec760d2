package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireSession)
	adminMiddleware := authMiddleware.Append(app.requireManager)
	// Page and streaming endpoints write their own content type.
	rawMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)
	rawAuthMiddleware := rawMiddleware.Append(app.requireSession)

	mux := pat.New()

	// Auth
	mux.Post("/auth/login", standardMiddleware.ThenFunc(app.authHandler.SignIn))
	mux.Post("/auth/register", standardMiddleware.ThenFunc(app.authHandler.SignUp))
	mux.Post("/auth/logout", standardMiddleware.ThenFunc(app.authHandler.SignOut))
	mux.Get("/me", standardMiddleware.ThenFunc(app.authHandler.Me))

	// Onboarding wizard
	mux.Get("/tenant/onboarding", authMiddleware.ThenFunc(app.onboardingHandler.State))
	mux.Post("/tenant/ekyc", authMiddleware.ThenFunc(app.onboardingHandler.SubmitKYC))
	mux.Get("/tenant/agreement/preview", rawAuthMiddleware.ThenFunc(app.onboardingHandler.AgreementPreview))
	mux.Post("/tenant/agreement/accept", authMiddleware.ThenFunc(app.onboardingHandler.AcceptAgreement))

	// Billing and checkout
	mux.Get("/billing/my-invoices", authMiddleware.ThenFunc(app.billingHandler.ListInvoices))
	mux.Get("/billing/my-invoices/:id", authMiddleware.ThenFunc(app.billingHandler.GetInvoice))
	mux.Post("/billing/my-invoices/:id/pay", authMiddleware.ThenFunc(app.checkoutHandler.Pay))
	mux.Get("/checkout/:id/status", authMiddleware.ThenFunc(app.checkoutHandler.Status))
	mux.Post("/checkout/:id/message", authMiddleware.ThenFunc(app.checkoutHandler.Message))
	mux.Get("/checkout/:id", rawAuthMiddleware.ThenFunc(app.checkoutHandler.Page))

	// Complaints
	mux.Post("/complaints", authMiddleware.ThenFunc(app.complaintHandler.Create))
	mux.Get("/complaints", authMiddleware.ThenFunc(app.complaintHandler.List))
	mux.Get("/complaints/:id", authMiddleware.ThenFunc(app.complaintHandler.Get))
	mux.Post("/complaints/:id/comments", authMiddleware.ThenFunc(app.complaintHandler.AddComment))

	// Community
	mux.Get("/announcements", authMiddleware.ThenFunc(app.communityHandler.Announcements))
	mux.Get("/events", authMiddleware.ThenFunc(app.communityHandler.Events))
	mux.Post("/events/:id/rsvp", authMiddleware.ThenFunc(app.communityHandler.RSVP))

	// Profile
	mux.Get("/profile", authMiddleware.ThenFunc(app.profileHandler.Get))
	mux.Put("/profile", authMiddleware.ThenFunc(app.profileHandler.Update))

	// Documents
	mux.Post("/documents/generate", authMiddleware.ThenFunc(app.documentHandler.Generate))
	mux.Get("/documents/download/:type", rawAuthMiddleware.ThenFunc(app.documentHandler.Download))

	// Administration
	mux.Get("/admin/tenants", adminMiddleware.ThenFunc(app.adminHandler.Tenants))
	mux.Post("/admin/tenants", adminMiddleware.ThenFunc(app.adminHandler.CreateTenant))
	mux.Put("/admin/tenants/:id", adminMiddleware.ThenFunc(app.adminHandler.UpdateTenant))
	mux.Get("/admin/flats", adminMiddleware.ThenFunc(app.adminHandler.Flats))
	mux.Post("/admin/flats", adminMiddleware.ThenFunc(app.adminHandler.CreateFlat))
	mux.Post("/admin/flats/:id/assign", adminMiddleware.ThenFunc(app.adminHandler.AssignFlat))

	// Live notifications
	mux.Get("/ws", rawAuthMiddleware.ThenFunc(app.notificationSocket))

	return mux
}
