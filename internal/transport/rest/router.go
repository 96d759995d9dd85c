package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/sangamhr/kyc-portal/internal/auth"
	"github.com/sangamhr/kyc-portal/internal/kyc"
	"github.com/sangamhr/kyc-portal/internal/session"
	"github.com/sangamhr/kyc-portal/internal/transport/middleware"
	"github.com/sangamhr/kyc-portal/internal/user"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, sessions *session.Manager, authHandler *auth.Handler, userHandler *user.Handler, kycHandler *kyc.Handler, userLoader middleware.UserLoader, staticDir string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	guards := middleware.NewGuards(sessions, logger)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.SessionMiddleware(sessions, userLoader, logger))

	// Health check routes
	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	// Static assets (bootstrap css/js referenced by the templates)
	if staticDir != "" {
		fs := http.FileServer(http.Dir(staticDir))
		router.Handle("/bootstrap/*", fs)
	}

	// Auth routes
	router.Get("/login", authHandler.ShowLogin)
	router.Post("/login", authHandler.Login)
	router.Get("/logout", authHandler.Logout)

	// Root dispatches to the right page for the current session
	router.Get("/", authHandler.Root)

	// KYC form and submission
	router.Get("/employee_kyc_detail", kycHandler.ShowForm)
	router.Post("/submit", kycHandler.SubmitForm)
	router.Get("/thank-you", kycHandler.ThankYou)

	// Dashboards
	router.Group(func(r chi.Router) {
		r.Use(guards.RequireSubmitted)
		r.Get("/user-dashboard", kycHandler.UserDashboard)
	})
	router.Group(func(r chi.Router) {
		r.Use(guards.RequireAdmin)
		r.Get("/admin-dashboard", kycHandler.AdminDashboard)
	})

	// JSON endpoint with the logged-in user's own row
	router.Group(func(r chi.Router) {
		r.Use(guards.RequireAuthenticated)
		r.Get("/user-details", userHandler.UserDetails)
	})
}
