package corehandler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/platform/metrics"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
)

// Handler serves the operational endpoints outside the /api/v1 tree.
type Handler struct {
	Ready     func(ctx context.Context) error
	Collector *metrics.Collector
}

func NewHandler(ready func(ctx context.Context) error, collector *metrics.Collector) *Handler {
	return &Handler{Ready: ready, Collector: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.handleHealth)
	r.Get("/readyz", h.handleReady)
	if h.Collector != nil {
		r.Get("/metricsz", h.handleMetrics)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.Ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.Ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Collector.Snapshot(), middleware.GetRequestID(r.Context()))
}
