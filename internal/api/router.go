package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(webhook *WebhookHandler) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// The handler itself rejects non-POST methods, so it is mounted for all
	// verbs rather than relying on the router's 405 handling.
	r.HandleFunc("/webhooks/board", webhook.Receive)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", HealthHandler())
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
