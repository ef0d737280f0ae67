package ratelimit

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tonechef/backend/internal/observability"
	"github.com/tonechef/backend/internal/types"
)

// fallbackClientKey buckets requests for which no address at all could be
// determined.
const fallbackClientKey = "unknown"

// ClientKey derives the rate-limit key for a request: the first entry of
// X-Forwarded-For when present, otherwise the transport-level client IP.
func ClientKey(c *gin.Context) string {
	if xff := c.Request.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if first != "" {
			return first
		}
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return fallbackClientKey
}

// Middleware returns a Gin middleware that enforces the rate limit. A
// failing limiter backend fails open: the request proceeds with a marker
// header rather than turning a Redis outage into a full outage.
func Middleware(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ClientKey(c)

		allowed, info, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Error("rate limit check failed", zap.Error(err))
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(info.ResetAt.Unix(), 10))

		if !allowed {
			retryAfter := int(info.RetryAfter.Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			observability.RateLimitedRequests.Inc()
			logger.Warn("rate limit exceeded",
				zap.String("client_key", key),
				zap.Int("limit", info.Limit),
				zap.Int("retry_after", retryAfter))

			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{
				Error: fmt.Sprintf("rate limit exceeded: at most %d requests are allowed per window, retry in %ds", info.Limit, retryAfter),
			})
			return
		}

		c.Next()
	}
}
