package jlc

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

// Throttle paces requests with a token bucket and tracks consecutive
// throttled responses for exponential backoff.
type Throttle struct {
	mu       sync.Mutex
	bucket   *rate.Limiter
	base     time.Duration
	cap      time.Duration
	failures int
}

// NewThrottle creates a throttle with the given minimum inter-request
// interval and backoff bounds. A non-positive interval disables
// pacing.
func NewThrottle(minInterval, base, backoffCap time.Duration) *Throttle {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &Throttle{
		bucket: rate.NewLimiter(limit, 1),
		base:   base,
		cap:    backoffCap,
	}
}

// Wait blocks until the pacing interval allows the next request.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.bucket.Wait(ctx)
}

// Throttled records one throttled response and returns the error to
// surface, carrying the backoff the caller should honor before the
// next attempt.
func (t *Throttle) Throttled() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures++
	return &domain.RateLimitError{
		RetryAfter: t.backoff(),
		Failures:   t.failures,
	}
}

// Succeeded resets the consecutive-failure counter.
func (t *Throttle) Succeeded() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures = 0
}

// Failures returns the consecutive throttled responses seen so far.
func (t *Throttle) Failures() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failures
}

// backoff doubles per consecutive failure from base up to cap.
// Callers hold mu.
func (t *Throttle) backoff() time.Duration {
	d := t.base
	for i := 1; i < t.failures; i++ {
		d *= 2
		if d >= t.cap {
			return t.cap
		}
	}
	if d > t.cap {
		return t.cap
	}
	return d
}
