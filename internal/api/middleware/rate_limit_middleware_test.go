package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/pkg/limiter"
	"github.com/stretchr/testify/require"
)

func doRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate-discount", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware_PerClientIP(t *testing.T) {
	// 額度以IP分流，某個IP打爆視窗不影響其他IP
	config := limiter.LimiterConfig{
		Capacity:   1,
		RefillRate: time.Minute,
	}
	handler := NewRateLimitMiddleware(&config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	require.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:50001").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(handler, "10.0.0.1:50002").Code)
	require.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.2:50001").Code)
}

func TestRateLimitMiddleware_RemoteAddrWithoutPort(t *testing.T) {
	// RealIP middleware改寫後RemoteAddr可能不帶port
	config := limiter.LimiterConfig{
		Capacity:   1,
		RefillRate: time.Minute,
	}
	handler := NewRateLimitMiddleware(&config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	require.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(handler, "10.0.0.1").Code)
}
