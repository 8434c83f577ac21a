package util

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter spaces calls to an external service. The first Wait returns
// immediately; each later Wait blocks until the configured interval has
// passed since the previous one.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewIntervalLimiter creates a RateLimiter with a fixed gap between calls.
// interval <= 0 disables limiting.
func NewIntervalLimiter(interval time.Duration) *RateLimiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &RateLimiter{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until a call is allowed or the context is cancelled.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}
