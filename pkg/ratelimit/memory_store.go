package ratelimit

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

const defaultShards = 32

// MemoryStore is an in-process Store. Keys are spread over independently
// locked shards so unrelated clients do not contend on one mutex.
type MemoryStore struct {
	shards []*shard
	now    func() time.Time

	cleanupInterval time.Duration
	stop            chan struct{}
	done            chan struct{}
	closeOnce       sync.Once
}

type shard struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count     int64
	expiresAt time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often expired windows are pruned.
// A non-positive interval disables the background cleanup.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.cleanupInterval = interval
	}
}

// WithStoreClock replaces time.Now. Tests use it to move windows forward.
func WithStoreClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithShards sets the number of shards.
func WithShards(n int) MemoryStoreOption {
	return func(s *MemoryStore) {
		if n > 0 {
			s.shards = newShards(n)
		}
	}
}

// NewMemoryStore creates a sharded in-memory store. Call Close to stop the
// cleanup goroutine.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		shards:          newShards(defaultShards),
		now:             time.Now,
		cleanupInterval: time.Minute,
		stop:            make(chan struct{}),
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.cleanupInterval > 0 {
		go s.cleanupLoop()
	} else {
		close(s.done)
	}
	return s
}

func newShards(n int) []*shard {
	shards := make([]*shard, n)
	for i := range shards {
		shards[i] = &shard{windows: make(map[string]*window)}
	}
	return shards
}

func (s *MemoryStore) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()%uint32(len(s.shards))]
}

// IncrementAndGet implements Store. The whole read-modify-write happens under
// the shard lock, so concurrent callers for one key never observe a stale count.
func (s *MemoryStore) IncrementAndGet(_ context.Context, key string, length time.Duration) (int64, time.Duration, error) {
	sh := s.shardFor(key)
	now := s.now()

	sh.mu.Lock()
	defer sh.mu.Unlock()

	w, ok := sh.windows[key]
	if !ok || !now.Before(w.expiresAt) {
		w = &window{expiresAt: now.Add(length)}
		sh.windows[key] = w
	}
	w.count++

	return w.count, w.expiresAt.Sub(now), nil
}

// Len returns the number of tracked keys, expired or not.
func (s *MemoryStore) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += len(sh.windows)
		sh.mu.Unlock()
	}
	return n
}

// Prune removes expired windows and returns how many were removed.
func (s *MemoryStore) Prune() int {
	now := s.now()
	removed := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		for key, w := range sh.windows {
			if !now.Before(w.expiresAt) {
				delete(sh.windows, key)
				removed++
			}
		}
		sh.mu.Unlock()
	}
	return removed
}

func (s *MemoryStore) cleanupLoop() {
	defer close(s.done)

	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Prune()
		case <-s.stop:
			return
		}
	}
}

// Close stops the cleanup goroutine and waits for it to exit.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
	return nil
}
