package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/musicapi-dashboard/backend/internal/models"
)

const globalStatsKey = "dashboard:global_stats"

// GlobalStats holds the store-wide aggregates shown on every dashboard.
type GlobalStats struct {
	TotalSongs    int64                     `json:"total_songs"`
	TotalRequests int64                     `json:"total_requests"`
	Leaderboard   []models.LeaderboardEntry `json:"leaderboard"`
}

// StatsCache keeps the global aggregates in Redis for a short TTL so that
// polling dashboards don't re-run the aggregation on every request.
// A nil receiver (Redis disabled) behaves as an always-miss cache.
type StatsCache struct {
	redis *Redis
	ttl   time.Duration
}

// NewStatsCache creates a stats cache. redis may be nil.
func NewStatsCache(redis *Redis, ttl time.Duration) *StatsCache {
	return &StatsCache{redis: redis, ttl: ttl}
}

// Get returns the cached aggregates, or false on a miss.
func (c *StatsCache) Get(ctx context.Context) (*GlobalStats, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, globalStatsKey)
	if err != nil {
		return nil, false
	}

	var stats GlobalStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		log.Printf("[cache] Dropping corrupt global stats entry: %v", err)
		_ = c.redis.Delete(ctx, globalStatsKey)
		return nil, false
	}

	return &stats, true
}

// Put stores the aggregates. Failures are logged, never surfaced: the
// cache is an optimization, not a source of truth.
func (c *StatsCache) Put(ctx context.Context, stats *GlobalStats) {
	if c == nil || c.redis == nil {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, globalStatsKey, data, c.ttl); err != nil {
		log.Printf("[cache] Failed to store global stats: %v", err)
	}
}
