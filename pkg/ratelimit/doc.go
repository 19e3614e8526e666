// Package ratelimit implements fixed-window admission control.
//
// FixedWindow counts every attempt for a key, admitted or not, and rejects
// once the count exceeds Limit within the current Window. The counter resets
// when the window that started with the first attempt has elapsed.
//
// Two stores are provided:
//
//   - MemoryStore keeps counters in a sharded map guarded by per-shard
//     mutexes. State lives for the life of the process.
//   - RedisStore keeps counters in Redis with an atomic INCR/PEXPIRE script,
//     so several replicas share one budget per client.
//
// Usage:
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.NewFixedWindow(store, ratelimit.Config{Limit: 5, Window: 15 * time.Minute})
//	res, err := limiter.Allow(ctx, clientip.Key(r))
//	if err == nil && !res.Allowed {
//	    w.Header().Set("Retry-After", strconv.Itoa(res.RetryAfterSeconds()))
//	}
//
// Callers decide what a store error means. The contact handler fails open.
package ratelimit
