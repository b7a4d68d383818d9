// Package ratelimit paces outbound calls to shared model services.
// It wraps golang.org/x/time/rate with the small surface the clients need.
package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Limiter is a token-bucket rate limiter.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a limiter allowing rps sustained requests per second with the
// given burst allowance. A non-positive rps disables limiting.
func New(rps float64, burst int) *Limiter {
	if rps <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a token is available or the context is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

// Allow reports whether a call may proceed right now without waiting.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
