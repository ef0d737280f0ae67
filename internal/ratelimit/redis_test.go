package ratelimit

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisTestLimiter(t *testing.T, limit int) *RedisLimiter {
	// Skip this test if no Redis is available
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		t.Skip("Skipping Redis-dependent test - REDIS_HOST not set")
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port)})
	t.Cleanup(func() { client.Close() })

	return NewRedisLimiter(client, limit, time.Hour, "test:rate_limit:"+uuid.New().String())
}

func TestRedisLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("should allow up to the limit and deny the next request", func(t *testing.T) {
		rl := newRedisTestLimiter(t, 3)
		key := uuid.New().String()

		for i := 0; i < 3; i++ {
			allowed, _, err := rl.Allow(ctx, key)
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should be allowed", i+1)
		}

		allowed, info, err := rl.Allow(ctx, key)
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 0, info.Remaining)
		assert.Positive(t, info.RetryAfter)
	})

	t.Run("should track keys independently", func(t *testing.T) {
		rl := newRedisTestLimiter(t, 1)

		allowedA, _, err := rl.Allow(ctx, uuid.New().String())
		require.NoError(t, err)
		allowedB, _, err := rl.Allow(ctx, uuid.New().String())
		require.NoError(t, err)

		assert.True(t, allowedA)
		assert.True(t, allowedB)
	})
}
