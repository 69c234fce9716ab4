package server

import (
	"log/slog"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/board"
)

// Handler wires HTTP routes to the scoreboard.
type Handler struct {
	board  *board.Scoreboard
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler constructs a Handler with defaults.
func NewHandler(b *board.Scoreboard, logger *slog.Logger) *Handler {
	return &Handler{
		board:  b,
		logger: logger,
		now:    time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether at least one league has fresh data.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.board.Ready() {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "warming"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// Status returns the pipeline and rotation state for operators.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		board.Status
		Time string `json:"time"`
	}{
		Status: h.board.Status(),
		Time:   h.now().UTC().Format(time.RFC3339),
	}
	h.writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
