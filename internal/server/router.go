package server

import "net/http"

// NewRouter builds the route table for the status server. The metrics
// handler is mounted only when telemetry is enabled.
func NewRouter(h *Handler, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/status", h.Status)
	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}
	return mux
}
