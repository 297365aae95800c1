package retry

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a token bucket limiter. The bucket starts full and refills
// continuously at refillRate tokens per second, capped at maxTokens.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing ratePerSecond requests per second.
func NewRateLimiter(ratePerSecond float64) *RateLimiter {
	return &RateLimiter{
		tokens:     ratePerSecond,
		maxTokens:  ratePerSecond,
		refillRate: ratePerSecond,
		lastRefill: time.Now(),
	}
}

func (r *RateLimiter) refill(now time.Time) {
	elapsed := now.Sub(r.lastRefill).Seconds()
	r.tokens += elapsed * r.refillRate
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
	r.lastRefill = now
}

// Wait blocks until a token is available or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		r.mu.Lock()
		now := time.Now()
		r.refill(now)
		if r.tokens >= 1 {
			r.tokens--
			r.mu.Unlock()
			return nil
		}
		// Time until the next token is available
		wait := time.Duration((1 - r.tokens) / r.refillRate * float64(time.Second))
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}
