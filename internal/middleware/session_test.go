package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/babitas-kitchen/storefront/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	store := session.NewStore(session.Options{NotificationTTL: time.Minute}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer store.Close()

	var seen *session.Session
	h := Session(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := session.FromContext(r.Context())
		require.True(t, ok)
		seen = s
		w.WriteHeader(http.StatusNoContent)
	}))

	// first visit creates a session
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	id := w.Header().Get(session.HeaderSessionID)
	require.NotEmpty(t, id)
	assert.Equal(t, id, seen.ID)

	// the same id resumes it
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(session.HeaderSessionID, id)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(session.HeaderSessionID))
	assert.Equal(t, 1, store.Len())

	// an unknown id gets a fresh session
	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(session.HeaderSessionID, "expired")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.NotEqual(t, "expired", w.Header().Get(session.HeaderSessionID))
	assert.Equal(t, 2, store.Len())
}
