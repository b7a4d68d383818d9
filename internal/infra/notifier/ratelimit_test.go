package notifier

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_AllowsBurst(t *testing.T) {
	limiter := NewRateLimiter(1.0, 3)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for i := 0; i < 3; i++ {
		if err := limiter.Allow(ctx); err != nil {
			t.Fatalf("burst request %d: unexpected error: %v", i+1, err)
		}
	}
}

func TestRateLimiter_BlocksOverBurst(t *testing.T) {
	limiter := NewRateLimiter(0.1, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.Allow(ctx); err != nil {
		t.Fatalf("first request: unexpected error: %v", err)
	}

	// Second token would take 10s to refill; the context expires first.
	if err := limiter.Allow(ctx); err == nil {
		t.Error("expected context deadline error")
	}
}
