package middleware

import (
	"context"
	"net/http"

	"github.com/satishgautham/New-Fitness-App/session"
)

type contextKey string

// SessionContextKey carries the request's session store through the context.
const SessionContextKey contextKey = "session_store"

// SessionHeader identifies the caller's session. The server mints a fresh
// session when the header is absent or unknown and echoes the ID back so the
// client can carry it on subsequent requests.
const SessionHeader = "X-Session-ID"

// Session resolves the request's session store from the X-Session-ID header,
// creating a new session when needed, and injects it into the context.
func Session(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			store := manager.Get(id)
			if store == nil {
				id, store = manager.New()
			}
			w.Header().Set(SessionHeader, id)

			ctx := context.WithValue(r.Context(), SessionContextKey, store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StoreFrom extracts the session store placed in the context by Session.
// It returns nil when the middleware did not run.
func StoreFrom(r *http.Request) *session.Store {
	store, _ := r.Context().Value(SessionContextKey).(*session.Store)
	return store
}
