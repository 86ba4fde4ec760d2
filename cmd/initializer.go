package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"societyWeb/internal/checkout"
	"societyWeb/internal/config"
	"societyWeb/internal/handlers"
	"societyWeb/internal/onboarding"
	"societyWeb/internal/remote"
	"societyWeb/internal/services"
	"societyWeb/internal/session"
)

type application struct {
	cfg      config.Config
	errorLog *log.Logger
	infoLog  *log.Logger

	api       *remote.Client
	sessions  *session.Store
	bridge    *checkout.Bridge
	wsManager *NotificationManager

	authHandler       *handlers.AuthHandler
	onboardingHandler *handlers.OnboardingHandler
	billingHandler    *handlers.BillingHandler
	checkoutHandler   *handlers.CheckoutHandler
	complaintHandler  *handlers.ComplaintHandler
	communityHandler  *handlers.CommunityHandler
	profileHandler    *handlers.ProfileHandler
	documentHandler   *handlers.DocumentHandler
	adminHandler      *handlers.AdminHandler

	adminService     *services.AdminService
	communityService *services.CommunityService
}

func initializeApp(cfg config.Config, rdb *redis.Client, errorLog, infoLog *log.Logger) *application {
	slogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	api := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout, slogger)
	sessions := session.NewStore(rdb, api, cfg.Session.TTL)

	// Every 401/403 from the remote API clears the session that carried the
	// stale token. Handlers never clean up auth state themselves.
	api.SetAuthFailureHook(func(ctx context.Context) {
		if sid, ok := session.SIDFromContext(ctx); ok {
			if err := sessions.Delete(ctx, sid); err != nil {
				errorLog.Printf("clear session %s: %v", sid, err)
			}
		}
	})

	wsManager := NewNotificationManager()
	wizard := onboarding.NewWizard(api, sessions, wsManager, cfg.Onboarding.Environment, cfg.Onboarding.TestOTP, slogger)
	bridge := checkout.NewBridge(api, slogger)

	billingService := &services.BillingService{API: api}
	complaintService := &services.ComplaintService{API: api}
	communityService := &services.CommunityService{API: api}
	profileService := &services.ProfileService{API: api, Sessions: sessions}
	adminService := &services.AdminService{API: api}

	return &application{
		cfg:       cfg,
		errorLog:  errorLog,
		infoLog:   infoLog,
		api:       api,
		sessions:  sessions,
		bridge:    bridge,
		wsManager: wsManager,

		authHandler:       &handlers.AuthHandler{API: api, Sessions: sessions, CookieName: cfg.Session.CookieName},
		onboardingHandler: &handlers.OnboardingHandler{Wizard: wizard},
		billingHandler:    &handlers.BillingHandler{Service: billingService, Bridge: bridge},
		checkoutHandler:   &handlers.CheckoutHandler{Bridge: bridge, Billing: billingService},
		complaintHandler:  &handlers.ComplaintHandler{Service: complaintService},
		communityHandler:  &handlers.CommunityHandler{Service: communityService},
		profileHandler:    &handlers.ProfileHandler{Service: profileService},
		documentHandler:   &handlers.DocumentHandler{API: api},
		adminHandler:      &handlers.AdminHandler{Service: adminService},

		adminService:     adminService,
		communityService: communityService,
	}
}
