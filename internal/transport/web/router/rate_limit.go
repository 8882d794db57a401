package router

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/oneevent/oneevent-api/internal/domain"
)

// limiterCache hands out one token-bucket limiter per key.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache[K comparable](limit rate.Limit, burst int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     limit,
		burst:    burst,
	}
}

// get returns the rate limiter for a specific key, creating one if needed.
func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// perUserRateLimit limits each authenticated user to perMinute requests, with bursts of the same
// size. Requests without a user ID pass through; route them behind requireAuthMiddleware.
// A non-positive perMinute disables limiting.
func perUserRateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	cache := newLimiterCache[string](rate.Limit(float64(perMinute)/60), perMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := domain.UserIDFromContext(r.Context())
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !cache.get(userID).Allow() {
				domain.LoggerFromContext(r.Context()).WarnContext(r.Context(), "rate limit exceeded")
				writeMessage(w, http.StatusTooManyRequests, "rate limit exceeded, please slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
