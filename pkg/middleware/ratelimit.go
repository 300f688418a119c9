package middleware

import (
	"net/http"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimit answers 429 once the shared token bucket is empty.
func RateLimit(limiter *rate.Limiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn("Rate limit exceeded",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				w.Header().Set("Retry-After", "1")
				utils.ResponseTooManyRequests(w, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewLimiter builds the bucket from config. A disabled limiter allows everything.
func NewLimiter(cfg utils.RateLimitConfig) *rate.Limiter {
	if !cfg.Enabled || cfg.RPS <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RPS), burst)
}
