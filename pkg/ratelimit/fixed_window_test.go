package ratelimit_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devcodecare/site/pkg/ratelimit"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newLimiter(t *testing.T, clock *fakeClock, limit int, window time.Duration) *ratelimit.FixedWindow {
	t.Helper()
	store := ratelimit.NewMemoryStore(
		ratelimit.WithStoreClock(clock.Now),
		ratelimit.WithCleanupInterval(0),
	)
	t.Cleanup(func() { _ = store.Close() })

	limiter, err := ratelimit.NewFixedWindow(store, ratelimit.Config{Limit: limit, Window: window}, ratelimit.WithClock(clock.Now))
	require.NoError(t, err)
	return limiter
}

func TestNewFixedWindow(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	tests := []struct {
		name    string
		store   ratelimit.Store
		cfg     ratelimit.Config
		wantErr error
	}{
		{"valid", store, ratelimit.Config{Limit: 5, Window: time.Minute}, nil},
		{"nil store", nil, ratelimit.Config{Limit: 5, Window: time.Minute}, ratelimit.ErrStoreRequired},
		{"zero limit", store, ratelimit.Config{Limit: 0, Window: time.Minute}, ratelimit.ErrInvalidLimit},
		{"negative window", store, ratelimit.Config{Limit: 1, Window: -time.Second}, ratelimit.ErrInvalidWindow},
		{"zero window", store, ratelimit.Config{Limit: 1, Window: 0}, ratelimit.ErrInvalidWindow},
		{"sub-millisecond window", store, ratelimit.Config{Limit: 1, Window: 500 * time.Microsecond}, ratelimit.ErrInvalidWindow},
		{"one millisecond window", store, ratelimit.Config{Limit: 1, Window: time.Millisecond}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fw, err := ratelimit.NewFixedWindow(tt.store, tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, fw)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, fw)
		})
	}
}

func TestFixedWindow_Allow(t *testing.T) {
	t.Parallel()

	t.Run("rejects the request after the ceiling", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		limiter := newLimiter(t, clock, 5, 15*time.Minute)
		ctx := context.Background()

		for i := range 5 {
			res, err := limiter.Allow(ctx, "203.0.113.1")
			require.NoError(t, err)
			assert.True(t, res.Allowed, "request %d", i+1)
			assert.Equal(t, 5-(i+1), res.Remaining)
			assert.Equal(t, 5, res.Limit)
		}

		res, err := limiter.Allow(ctx, "203.0.113.1")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
		assert.Equal(t, 15*time.Minute, res.ResetIn)
		assert.Equal(t, clock.Now().Add(15*time.Minute), res.ResetAt)
	})

	t.Run("reset in shrinks as time passes", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		limiter := newLimiter(t, clock, 1, time.Minute)
		ctx := context.Background()

		_, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)

		clock.Advance(20 * time.Second)
		res, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 40*time.Second, res.ResetIn)
		assert.Equal(t, 40, res.RetryAfterSeconds())
	})

	t.Run("rejected attempts still count", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		limiter := newLimiter(t, clock, 2, time.Minute)
		ctx := context.Background()

		for range 10 {
			_, err := limiter.Allow(ctx, "k")
			require.NoError(t, err)
		}
		clock.Advance(59 * time.Second)
		res, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
	})

	t.Run("new window after elapsed duration", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		limiter := newLimiter(t, clock, 2, time.Minute)
		ctx := context.Background()

		for range 3 {
			_, err := limiter.Allow(ctx, "k")
			require.NoError(t, err)
		}

		clock.Advance(time.Minute)
		res, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 1, res.Remaining)
		assert.Equal(t, time.Minute, res.ResetIn)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		limiter := newLimiter(t, clock, 1, time.Minute)
		ctx := context.Background()

		res, err := limiter.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, res.Allowed)

		res, err = limiter.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		limiter := newLimiter(t, newFakeClock(), 1, time.Minute)
		_, err := limiter.Allow(context.Background(), "")
		assert.ErrorIs(t, err, ratelimit.ErrKeyRequired)
	})
}

func TestFixedWindow_Concurrency(t *testing.T) {
	t.Parallel()

	const (
		limit   = 5
		workers = 200
	)

	limiter := newLimiter(t, newFakeClock(), limit, time.Minute)
	ctx := context.Background()

	var (
		admitted atomic.Int64
		wg       sync.WaitGroup
		start    = make(chan struct{})
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			res, err := limiter.Allow(ctx, "198.51.100.1")
			if err == nil && res.Allowed {
				admitted.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(limit), admitted.Load())
}

type failingStore struct{}

func (failingStore) IncrementAndGet(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("connection refused")
}

func TestFixedWindow_StoreFailure(t *testing.T) {
	t.Parallel()

	limiter, err := ratelimit.NewFixedWindow(failingStore{}, ratelimit.Config{Limit: 1, Window: time.Minute})
	require.NoError(t, err)

	_, err = limiter.Allow(context.Background(), "k")
	assert.ErrorIs(t, err, ratelimit.ErrStoreFailure)
}

func TestResult_RetryAfterSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		resetIn time.Duration
		want    int
	}{
		{0, 1},
		{200 * time.Millisecond, 1},
		{time.Second, 1},
		{1500 * time.Millisecond, 2},
		{15 * time.Minute, 900},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ratelimit.Result{ResetIn: tt.resetIn}.RetryAfterSeconds(), tt.resetIn.String())
	}
}
