package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window rate limiter backed by Redis, for
// deployments running more than one instance behind a load balancer. Keys
// are bucketed by truncated window start and expire with the window, so no
// sweep is needed.
type RedisLimiter struct {
	redis     *redis.Client
	limit     int
	window    time.Duration
	keyPrefix string
}

// NewRedisLimiter creates a Redis-backed rate limiter. The client is owned
// by the caller and is not closed by Close.
func NewRedisLimiter(redisClient *redis.Client, limit int, window time.Duration, keyPrefix string) *RedisLimiter {
	return &RedisLimiter{
		redis:     redisClient,
		limit:     limit,
		window:    window,
		keyPrefix: keyPrefix,
	}
}

// Allow checks whether a request from the given key should be allowed.
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, Info, error) {
	now := time.Now()
	windowStart := now.Truncate(rl.window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.keyPrefix, key, windowStart.Unix())

	// INCR and EXPIRE must land together so the key cannot leak without a TTL.
	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, Info{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.limit - count
	if remaining < 0 {
		remaining = 0
	}

	resetAt := windowStart.Add(rl.window)
	info := Info{
		Limit:     rl.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}

	if count > rl.limit {
		info.RetryAfter = time.Until(resetAt)
		return false, info, nil
	}

	return true, info, nil
}

// Close is a no-op; the Redis client belongs to the caller.
func (rl *RedisLimiter) Close() {}
