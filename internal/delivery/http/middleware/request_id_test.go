package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/healthz", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
	})

	t.Run("generates a uuid when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/healthz", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/healthz", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 500))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
	})
}
