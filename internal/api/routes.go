package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fintwin/lexhook/internal/log"
)

// Routes assembles the router with the canonical middleware stack:
// recoverer first, then request-ID correlation, then request logging, then
// rate limiting on the dialog route.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(RequestID)
	r.Use(log.Middleware())

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Get("/api/status", s.handleStatus)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if s.cfg.RateLimitRPM > 0 {
			r.Use(dialogRateLimit(s.cfg.RateLimitRPM, time.Minute))
		}
		r.Post("/v1/dialog", s.handleDialog)
	})

	return r
}
