package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/d9705996/kysai/internal/api/middleware"
	"github.com/d9705996/kysai/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-at-least-32-bytes!!!"

func issueToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	org := uint(1)
	tok, err := auth.IssueAccessToken(5, "u@kysai.com", "member", &org, secret, ttl)
	require.NoError(t, err)
	return tok
}

func TestOptionalAuth_MissingHeaderIsAnonymous(t *testing.T) {
	called := false
	handler := middleware.OptionalAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Nil(t, middleware.ClaimsFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	handler := middleware.OptionalAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r.Context())
		require.NotNil(t, claims)
		assert.Equal(t, uint(5), claims.UserID)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 15*time.Minute))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"garbage token", "Bearer this.is.garbage"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"expired", "Bearer " + issueToken(t, -time.Minute)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.OptionalAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not run")
			}))

			req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"detail"`)
		})
	}
}
