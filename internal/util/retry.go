package util

import (
	"context"
	"time"
)

// Retry calls fn up to maxAttempts times with exponential backoff starting at
// baseDelay. It returns nil on the first successful call, or the last error
// if all attempts fail. The function respects context cancellation between
// retries.
func Retry(ctx context.Context, maxAttempts int, baseDelay time.Duration, fn func() error) error {
	return RetryWithBackoff(ctx, maxAttempts, ExponentialBackoff(baseDelay), func(int) error {
		return fn()
	})
}

// Backoff returns the wait before the next attempt, given the zero-based
// index of the attempt that just failed and its error.
type Backoff func(attempt int, err error) time.Duration

// ExponentialBackoff doubles base after every failed attempt.
func ExponentialBackoff(base time.Duration) Backoff {
	return func(attempt int, _ error) time.Duration {
		return base << attempt
	}
}

// RateLimitBackoff waits a fixed base after ordinary failures and
// base * 2^attempt after failures that isRateLimit recognises.
func RateLimitBackoff(base time.Duration, isRateLimit func(error) bool) Backoff {
	return func(attempt int, err error) time.Duration {
		if isRateLimit != nil && isRateLimit(err) {
			return base << attempt
		}
		return base
	}
}

// RetryWithBackoff calls fn with the zero-based attempt index up to
// maxAttempts times, sleeping backoff(attempt, err) between failures. No sleep
// follows the final attempt. A cancelled context stops retrying and returns
// ctx.Err().
func RetryWithBackoff(ctx context.Context, maxAttempts int, backoff Backoff, fn func(attempt int) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn(attempt)
		if err == nil {
			return nil
		}

		if attempt < maxAttempts-1 {
			delay := time.Duration(0)
			if backoff != nil {
				delay = backoff(attempt, err)
			}
			if delay <= 0 {
				continue
			}
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return err
}

// Sleep pauses for d or until ctx is cancelled, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
