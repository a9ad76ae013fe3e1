package middleware

import (
	"log/slog"
	"net/http"

	"github.com/babitas-kitchen/storefront/internal/session"
	"github.com/babitas-kitchen/storefront/pkg/logger"
)

// Session attaches the visitor's session to the request context.
// A missing or unknown X-Session-Id starts a new session; the id in use
// is always echoed back in the response header.
func Session(store *session.Store) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, _ := store.GetOrCreate(r.Header.Get(session.HeaderSessionID))

			w.Header().Set(session.HeaderSessionID, s.ID)

			ctx := session.NewContext(r.Context(), s)
			ctx = logger.WithAttrs(ctx, slog.String("session_id", s.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
