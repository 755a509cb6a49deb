package llm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// rateLimiter enforces a per-provider request budget. Tokens are earned
// lazily from elapsed time, so there is no background goroutine to manage.
type rateLimiter struct {
	mu         sync.Mutex
	interval   time.Duration // time to earn one token
	capacity   float64
	tokens     float64
	lastRefill time.Time
}

// newRateLimiter creates a limiter allowing requestsPerMinute sustained, with
// up to burst requests served immediately after an idle period.
func newRateLimiter(requestsPerMinute, burst int) *rateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if burst <= 0 {
		burst = requestsPerMinute
	}

	return &rateLimiter{
		interval:   time.Minute / time.Duration(requestsPerMinute),
		capacity:   float64(burst),
		tokens:     float64(burst),
		lastRefill: time.Now(),
	}
}

// wait blocks until a token is available or the context is canceled.
func (rl *rateLimiter) wait(ctx context.Context) error {
	for {
		delay := rl.reserve()
		if delay <= 0 {
			return nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("rate limiter canceled: %w", ctx.Err())
		case <-timer.C:
		}
	}
}

// reserve takes a token if one is available, otherwise reports how long to
// wait before trying again.
func (rl *rateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.tokens += float64(now.Sub(rl.lastRefill)) / float64(rl.interval)
	if rl.tokens > rl.capacity {
		rl.tokens = rl.capacity
	}
	rl.lastRefill = now

	if rl.tokens >= 1 {
		rl.tokens--
		return 0
	}
	return time.Duration((1 - rl.tokens) * float64(rl.interval))
}
