// Package ratelimit provides fixed-window rate limiting for HTTP requests,
// keyed by client identifier. Counting is per key within a reset-at-boundary
// time window; the burst-at-boundary imprecision of fixed windows is an
// accepted limitation. Two backends implement the contract: an in-memory
// counter map and a Redis counter for multi-instance deployments.
package ratelimit

import (
	"context"
	"time"
)

// Limiter defines the rate limiting contract. Implementations must be safe
// for concurrent use.
type Limiter interface {
	// Allow checks whether a request identified by key should be allowed,
	// incrementing the window counter when it is. A denied request does not
	// increment. The returned Info populates response headers.
	Allow(ctx context.Context, key string) (allowed bool, info Info, err error)

	// Close stops background goroutines and releases resources.
	Close()
}

// Info contains rate limit state for populating response headers.
type Info struct {
	Limit      int           // Maximum requests per window
	Remaining  int           // Requests remaining in the current window
	ResetAt    time.Time     // When the current window ends
	RetryAfter time.Duration // How long to wait (meaningful only when denied)
}
