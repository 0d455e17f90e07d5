// Package ratelimit implements a per-client sliding window rate limiter
// backed by Redis sorted sets.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/musicapi-dashboard/backend/internal/cache"
)

// Limiter enforces a single requests-per-window limit per identifier.
// A nil Limiter allows everything.
type Limiter struct {
	cache  *cache.Redis
	limit  int
	window time.Duration
}

// New creates a limiter. Returns nil (no limiting) when the cache is
// absent or the limit is non-positive.
func New(c *cache.Redis, perMinute int) *Limiter {
	if c == nil || perMinute <= 0 {
		return nil
	}
	return &Limiter{
		cache:  c,
		limit:  perMinute,
		window: time.Minute,
	}
}

// Allow records one request for the identifier and reports whether it
// fits inside the window. The window slides: each request is stored in a
// sorted set with its timestamp as score and expired entries are pruned
// on every check.
func (l *Limiter) Allow(ctx context.Context, identifier string) (bool, error) {
	if l == nil {
		return true, nil
	}

	now := time.Now()
	nowUnixMicro := now.UnixMicro()
	windowStart := now.Add(-l.window).UnixMicro()
	key := "ratelimit:" + identifier

	client := l.cache.Client()
	pipe := client.Pipeline()

	// Remove entries outside the window
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(windowStart, 10))

	// Count current entries in window
	countCmd := pipe.ZCard(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return false, fmt.Errorf("failed to execute rate limit check: %w", err)
	}

	if int(countCmd.Val()) >= l.limit {
		return false, nil
	}

	// Microsecond member values keep rapid requests distinct.
	err := client.ZAdd(ctx, key, redis.Z{
		Score:  float64(nowUnixMicro),
		Member: strconv.FormatInt(nowUnixMicro, 10),
	}).Err()
	if err != nil {
		return false, fmt.Errorf("failed to add rate limit entry: %w", err)
	}

	if err := client.Expire(ctx, key, l.window+time.Second).Err(); err != nil {
		// Non-fatal; Redis evicts the key on memory pressure anyway.
		return true, nil
	}

	return true, nil
}
