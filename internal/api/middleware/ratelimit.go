package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/response"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/cache"
)

// RateLimit enforces a fixed-window per-client request limit backed by the
// cache. With the no-op cache every request counts as the first in its
// window, effectively disabling the limit.
type RateLimit struct {
	cache cache.Cache
	limit int64
}

// NewRateLimit creates a rate limiter allowing limit requests per minute per
// client address.
func NewRateLimit(c cache.Cache, limit int) *RateLimit {
	return &RateLimit{cache: c, limit: int64(limit)}
}

func (rl *RateLimit) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		count, err := rl.cache.IncrWithExpiry(r.Context(), cache.RateLimitKey(host), time.Minute)
		if err != nil {
			// Fail open: a cache outage must not take down submissions.
			slog.Warn("rate limit check failed", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		if count > rl.limit {
			response.Error(w, http.StatusTooManyRequests, "RATE_LIMITED",
				"Too many requests; please slow down")
			return
		}

		next.ServeHTTP(w, r)
	})
}
