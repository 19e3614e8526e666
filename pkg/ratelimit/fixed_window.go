package ratelimit

import (
	"context"
	"errors"
	"time"
)

// Config holds fixed-window limits.
type Config struct {
	// Limit is the number of requests admitted per window.
	Limit int `env:"CONTACT_RATE_LIMIT" envDefault:"5"`

	// Window is the window length.
	Window time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"15m"`
}

// Validate checks that Limit is positive and Window is at least one
// millisecond, the resolution of store expiries.
func (c Config) Validate() error {
	if c.Limit <= 0 {
		return ErrInvalidLimit
	}
	if c.Window < time.Millisecond {
		return ErrInvalidWindow
	}
	return nil
}

// FixedWindow admits at most Limit requests per key in each Window.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

// FixedWindowOption configures a FixedWindow.
type FixedWindowOption func(*FixedWindow)

// WithKeyPrefix namespaces keys in the store, e.g. "contact:".
func WithKeyPrefix(prefix string) FixedWindowOption {
	return func(fw *FixedWindow) {
		fw.prefix = prefix
	}
}

// WithClock replaces time.Now when computing ResetAt.
func WithClock(now func() time.Time) FixedWindowOption {
	return func(fw *FixedWindow) {
		if now != nil {
			fw.now = now
		}
	}
}

// NewFixedWindow creates a fixed-window limiter over store.
func NewFixedWindow(store Store, cfg Config, opts ...FixedWindowOption) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fw := &FixedWindow{
		store:  store,
		limit:  cfg.Limit,
		window: cfg.Window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(fw)
	}
	return fw, nil
}

// Allow implements Limiter.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (Result, error) {
	if key == "" {
		return Result{}, ErrKeyRequired
	}

	count, ttl, err := fw.store.IncrementAndGet(ctx, fw.prefix+key, fw.window)
	if err != nil {
		return Result{}, errors.Join(ErrStoreFailure, err)
	}
	if ttl < 0 {
		ttl = 0
	}

	res := Result{
		Allowed: count <= int64(fw.limit),
		Limit:   fw.limit,
		ResetIn: ttl,
		ResetAt: fw.now().Add(ttl),
	}
	if res.Allowed {
		res.Remaining = fw.limit - int(count)
	}
	return res, nil
}
