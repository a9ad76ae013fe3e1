package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/babitas-kitchen/storefront/internal/intro"
)

// IntroHandler streams the splash sequence as server-sent events
type IntroHandler struct {
	steps []intro.Step
	log   *slog.Logger
}

// NewIntroHandler creates a handler for the given steps
func NewIntroHandler(steps []intro.Step, log *slog.Logger) *IntroHandler {
	return &IntroHandler{steps: steps, log: log}
}

// Stream handles GET /api/intro
// Each phase is sent as an "phase" event when it starts; the stream ends
// after the last phase or when the client goes away
func (h *IntroHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, http.StatusInternalServerError, "Streaming unsupported", h.log)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	err := intro.Run(r.Context(), h.steps, func(e intro.Event) error {
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "event: phase\ndata: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		h.log.DebugContext(r.Context(), "intro stream stopped early", "error", err)
	}
}
