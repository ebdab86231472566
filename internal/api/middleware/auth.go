// Package middleware provides HTTP middleware for KYSAI.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/d9705996/kysai/internal/api/render"
	"github.com/d9705996/kysai/internal/auth"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// OptionalAuth validates a Bearer JWT when one is sent. Requests without an
// Authorization header pass through anonymously; a header that does not
// carry a valid token is rejected with 401. Valid claims are stored in the
// request context.
func OptionalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearerToken(header)
			if token == "" {
				render.Detail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			claims, err := auth.ParseAccessToken(token, secret)
			if err != nil {
				render.Detail(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts Claims from the request context.
// Returns nil for anonymous requests.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	v := ctx.Value(claimsKey)
	if v == nil {
		return nil
	}
	c, _ := v.(*auth.Claims)
	return c
}

func extractBearerToken(h string) string {
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
