package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/middleware"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/response"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/metrics"
)

// Dependencies holds all handler and middleware dependencies for the router.
// Auth and RateLimit may be nil, disabling the corresponding middleware.
type Dependencies struct {
	Auth      *mw.Auth
	RateLimit *mw.RateLimit

	RootHandler       http.HandlerFunc
	HealthHandler     http.HandlerFunc
	AnalyzeHandler    http.HandlerFunc
	StatusHandler     http.HandlerFunc
	ReportHandler     http.HandlerFunc
	TestReportHandler http.HandlerFunc
}

// NewRouter builds the Chi router with the middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	// Public service endpoints
	r.Get("/", orNotImplemented(deps.RootHandler))
	r.Get("/health", orNotImplemented(deps.HealthHandler))
	r.Get("/test-report", orNotImplemented(deps.TestReportHandler))
	r.Handle("/metrics", metrics.Handler())

	// Client API
	r.Group(func(r chi.Router) {
		if deps.Auth != nil {
			r.Use(deps.Auth.Require)
		}
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit.Limit)
		}

		r.Post("/analyze", orNotImplemented(deps.AnalyzeHandler))
		r.Get("/api/analysis/status/{id}", orNotImplemented(deps.StatusHandler))
		r.Get("/analysis/{id}", orNotImplemented(deps.ReportHandler))
		// Alias kept for client compatibility.
		r.Get("/api/analysis/report/{id}", orNotImplemented(deps.ReportHandler))
	})

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented")
	}
}
