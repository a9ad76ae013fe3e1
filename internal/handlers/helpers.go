package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/babitas-kitchen/storefront/internal/session"
	"github.com/go-chi/chi/v5"
)

// requireSession returns the session attached by the session middleware
func requireSession(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*session.Session, bool) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		logger.ErrorContext(r.Context(), "request reached handler without a session", "path", r.URL.Path)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
		return nil, false
	}
	return s, true
}

// productIDParam parses the {productId} URL parameter
func productIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeJSON decodes the request body into v, rejecting unknown fields
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes a JSON response for handlers without a logger
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// headers are already sent, so an encode error has nowhere to go
	_ = json.NewEncoder(w).Encode(data)
}
