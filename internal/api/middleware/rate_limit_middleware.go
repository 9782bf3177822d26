package middleware

import (
	"net"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/pkg/limiter"
)

// NewRateLimitMiddleware 公開端點限流，擋折扣碼暴力嘗試
// 額度以client IP分流，各IP獨立計數
func NewRateLimitMiddleware(config *limiter.LimiterConfig) func(http.Handler) http.Handler {
	rateLimiter := limiter.NewKeyedFixedWindow(config)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rateLimiter.Allow(clientIP(r)) {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP RealIP middleware會把RemoteAddr改寫成真實IP，可能不帶port
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
