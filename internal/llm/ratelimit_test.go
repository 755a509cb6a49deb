package llm

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterBurstThenThrottle(t *testing.T) {
	// One request per minute sustained, burst of two: the third reserve has
	// to wait close to a full interval.
	rl := newRateLimiter(1, 2)

	if delay := rl.reserve(); delay != 0 {
		t.Fatalf("first reserve delayed by %v, want immediate", delay)
	}
	if delay := rl.reserve(); delay != 0 {
		t.Fatalf("second reserve delayed by %v, want immediate", delay)
	}
	if delay := rl.reserve(); delay < 30*time.Second {
		t.Errorf("third reserve delayed by %v, want close to a minute", delay)
	}
}

func TestRateLimiterDefaults(t *testing.T) {
	rl := newRateLimiter(0, 0)
	if rl.interval != time.Second {
		t.Errorf("default interval = %v, want 1s (60 rpm)", rl.interval)
	}
	if rl.capacity != 60 {
		t.Errorf("default capacity = %v, want 60", rl.capacity)
	}
}

func TestRateLimiterWaitHonorsCancellation(t *testing.T) {
	rl := newRateLimiter(1, 1)
	if err := rl.wait(context.Background()); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rl.wait(ctx); err == nil {
		t.Error("wait returned nil with canceled context and no tokens")
	}
}
