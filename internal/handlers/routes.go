package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/setclassname/internal/middleware"
)

// Router wires every route and the global middleware.
func Router(h *Handlers, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Post("/resolve", h.Resolve)
	r.Get("/components/{name}", h.Component)
	r.Get("/preview/{name}", h.Preview)
	r.Get("/showcase", h.Showcase)
	r.Get("/stats", h.Stats)

	r.Post("/prefs", h.SetPrefs)
	r.Delete("/prefs", h.ClearPrefs)

	return r
}
