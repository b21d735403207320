package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/linkvaultapp/linkvault/auth"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession resolves the bearer token (if any) into session claims on
// the request context. Every request passes through the same
// transition: it arrives unresolved, and leaves either authenticated or
// unauthenticated. Missing or invalid tokens are not an error here;
// RequireUser decides whether a session is mandatory.
func WithSession(tokens *auth.TokenManager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if claims, err := tokens.Verify(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, claims))
			}
		}
		next(w, r)
	}
}

// RequireUser rejects requests that carry no authenticated session.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFrom(r); !ok {
			ErrorResponse(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r)
	}
}

// SessionFrom returns the authenticated session claims for the request,
// if any.
func SessionFrom(r *http.Request) (*auth.SessionClaims, bool) {
	claims, ok := r.Context().Value(sessionContextKey).(*auth.SessionClaims)
	return claims, ok
}
