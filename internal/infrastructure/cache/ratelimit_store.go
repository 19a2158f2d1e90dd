// Package cache holds short-lived HTTP plumbing state such as rate limit
// counters. No domain data is cached.
package cache

import (
	"context"
	"time"
)

// RateLimitStore counts hits per key within a fixed window
type RateLimitStore interface {
	// Hit records one request for key and returns the hit count in the
	// current window and the time until the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
	Close() error
}
