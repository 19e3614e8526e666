package ratelimit

import (
	"context"
	"time"
)

// Result contains the outcome of a single admission check.
type Result struct {
	// Allowed reports whether the request fits in the current window.
	Allowed bool

	// Limit is the maximum number of requests admitted per window.
	Limit int

	// Remaining is the number of requests still admitted in the current
	// window. Always 0 when Allowed is false.
	Remaining int

	// ResetIn is the time left until the current window ends.
	ResetIn time.Duration

	// ResetAt is the wall-clock time at which the current window ends.
	ResetAt time.Time
}

// RetryAfterSeconds returns ResetIn rounded up to whole seconds, never less
// than 1. Suitable for the Retry-After header.
func (r Result) RetryAfterSeconds() int {
	secs := int((r.ResetIn + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

// Limiter decides whether a request identified by key is admitted.
type Limiter interface {
	// Allow counts one attempt for key and reports whether it is admitted.
	// Rejected attempts are counted too.
	Allow(ctx context.Context, key string) (Result, error)
}

// Store keeps per-key fixed-window counters.
type Store interface {
	// IncrementAndGet atomically increments the counter for key, starting a
	// new window of the given length when none is active, and returns the
	// new count along with the time left in the window.
	IncrementAndGet(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}
