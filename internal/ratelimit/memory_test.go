package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrozenLimiter(limit int, window time.Duration) (*MemoryLimiter, *time.Time) {
	m := NewMemoryLimiter(limit, window)
	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }
	return m, &current
}

func TestMemoryLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("should allow up to the limit and deny the next request", func(t *testing.T) {
		m, _ := newFrozenLimiter(20, time.Hour)
		defer m.Close()

		for i := 0; i < 20; i++ {
			allowed, _, err := m.Allow(ctx, "client-a")
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should be allowed", i+1)
		}

		allowed, info, err := m.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 0, info.Remaining)
		assert.Positive(t, info.RetryAfter)
	})

	t.Run("should not count denied requests", func(t *testing.T) {
		m, _ := newFrozenLimiter(1, time.Hour)
		defer m.Close()

		m.Allow(ctx, "client-a")
		m.Allow(ctx, "client-a")
		m.Allow(ctx, "client-a")

		m.mu.Lock()
		defer m.mu.Unlock()
		assert.Equal(t, 1, m.entries["client-a"].count)
	})

	t.Run("should reset the counter once the window elapses", func(t *testing.T) {
		m, now := newFrozenLimiter(2, time.Hour)
		defer m.Close()

		m.Allow(ctx, "client-a")
		m.Allow(ctx, "client-a")
		allowed, _, _ := m.Allow(ctx, "client-a")
		assert.False(t, allowed)

		*now = now.Add(time.Hour + time.Second)

		allowed, info, err := m.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 1, info.Remaining)
	})

	t.Run("should track keys independently", func(t *testing.T) {
		m, _ := newFrozenLimiter(1, time.Hour)
		defer m.Close()

		allowedA, _, _ := m.Allow(ctx, "client-a")
		allowedB, _, _ := m.Allow(ctx, "client-b")
		deniedA, _, _ := m.Allow(ctx, "client-a")

		assert.True(t, allowedA)
		assert.True(t, allowedB)
		assert.False(t, deniedA)
	})

	t.Run("should report the window reset time", func(t *testing.T) {
		m, now := newFrozenLimiter(5, time.Hour)
		defer m.Close()

		_, info, _ := m.Allow(ctx, "client-a")
		assert.Equal(t, now.Add(time.Hour), info.ResetAt)
	})
}

func TestMemoryLimiter_EvictExpired(t *testing.T) {
	m, now := newFrozenLimiter(5, time.Hour)
	defer m.Close()

	ctx := context.Background()
	m.Allow(ctx, "stale")

	*now = now.Add(2 * time.Hour)
	m.Allow(ctx, "fresh")
	m.evictExpired()

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.NotContains(t, m.entries, "stale")
	assert.Contains(t, m.entries, "fresh")
}

func TestMemoryLimiter_ConcurrentAccess(t *testing.T) {
	m := NewMemoryLimiter(1000, time.Hour)
	defer m.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				m.Allow(context.Background(), "shared")
			}
		}()
	}
	wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Equal(t, 500, m.entries["shared"].count)
}

func TestMemoryLimiter_CloseIsIdempotent(t *testing.T) {
	m := NewMemoryLimiter(1, time.Hour)
	m.Close()
	m.Close()
}
