package ratelimit

import (
	"context"
	"sync"
	"time"
)

// entry is the per-key window counter.
type entry struct {
	count       int
	windowStart time.Time
}

// MemoryLimiter is an in-memory fixed-window rate limiter. Each key gets a
// counter that resets once its window has elapsed. A background goroutine
// sweeps expired entries once per window length to bound memory growth;
// expired entries are also replaced lazily on access.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
	done    chan struct{}
	closed  bool
}

// NewMemoryLimiter creates a rate limiter allowing limit requests per key
// per window. It starts a background goroutine for eviction.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	m := &MemoryLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*entry),
		done:    make(chan struct{}),
	}
	go m.sweep()
	return m
}

// Allow checks whether a request from the given key should be allowed.
func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	e, exists := m.entries[key]
	if !exists || now.Sub(e.windowStart) >= m.window {
		e = &entry{count: 1, windowStart: now}
		m.entries[key] = e
		return true, m.info(e), nil
	}

	if e.count >= m.limit {
		info := m.info(e)
		info.RetryAfter = time.Until(info.ResetAt)
		return false, info, nil
	}

	e.count++
	return true, m.info(e), nil
}

func (m *MemoryLimiter) info(e *entry) Info {
	remaining := m.limit - e.count
	if remaining < 0 {
		remaining = 0
	}
	return Info{
		Limit:     m.limit,
		Remaining: remaining,
		ResetAt:   e.windowStart.Add(m.window),
	}
}

// Close stops the background sweep goroutine.
func (m *MemoryLimiter) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.done)
	}
}

// sweep periodically evicts entries whose window has elapsed.
func (m *MemoryLimiter) sweep() {
	ticker := time.NewTicker(m.window)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.evictExpired()
		}
	}
}

// evictExpired removes entries whose window has elapsed.
func (m *MemoryLimiter) evictExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-m.window)
	for key, e := range m.entries {
		if e.windowStart.Before(cutoff) {
			delete(m.entries, key)
		}
	}
}
