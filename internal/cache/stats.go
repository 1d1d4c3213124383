// Package cache provides a small optional Redis layer for expensive
// read-mostly values. The forum runs fine without Redis: every helper is
// nil-safe, so callers hold a possibly-nil *StatsCache and simply skip the
// cache when it is absent.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codelamp/go-forum-backend/internal/repo"
)

// statsKey is the single key the dashboard stats live under.
const statsKey = "forum:stats"

// StatsCache caches the moderation dashboard aggregates in Redis with a
// short TTL so dashboard refreshes do not hammer the database with COUNTs.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a StatsCache over rdb, or nil when rdb is nil.
func New(rdb *redis.Client, ttl time.Duration) *StatsCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StatsCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached stats and true on a hit. A nil receiver, a miss, a
// Redis error, or a corrupt payload all read as a miss; the caller falls back
// to the database.
func (c *StatsCache) Get(ctx context.Context) (repo.ForumStats, bool) {
	if c == nil {
		return repo.ForumStats{}, false
	}
	raw, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && !errors.Is(err, context.Canceled) {
			// treat any Redis failure as a miss
			return repo.ForumStats{}, false
		}
		return repo.ForumStats{}, false
	}
	var s repo.ForumStats
	if err := json.Unmarshal(raw, &s); err != nil {
		return repo.ForumStats{}, false
	}
	return s, true
}

// Set stores the stats for the configured TTL. Errors are swallowed; the
// cache is best-effort.
func (c *StatsCache) Set(ctx context.Context, s repo.ForumStats) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, statsKey, raw, c.ttl)
}

// Invalidate drops the cached stats, for callers that just changed a counted
// collection and want the next dashboard read to be fresh.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, statsKey)
}
