package handlers

import (
	"log/slog"
	nethttp "net/http"
)

// Handler serves the operational endpoints next to the GraphQL route.
type Handler struct {
	logger  *slog.Logger
	readyFn func() bool
}

// NewHandler constructs a Handler. readyFn reports whether the store has been seeded;
// a nil readyFn means always ready.
func NewHandler(logger *slog.Logger, readyFn func() bool) *Handler {
	return &Handler{
		logger:  logger,
		readyFn: readyFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.readyFn != nil && !h.readyFn() {
		if logger := loggerFromContext(r, h.logger); logger != nil {
			logger.Warn("readiness probe failed", "reason", "store not seeded")
		}
		writeError(w, r, nethttp.StatusServiceUnavailable, "store not seeded", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// NotFound answers every route the router does not know.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}
