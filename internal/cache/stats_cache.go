package cache

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/aquareyes/carwash-admin/internal/stats"
)

const statisticsKey = "carwash:statistics:current"

// StatsCache mirrors the current statistics snapshot into redis so
// dashboard reads can be served without rescanning appointments.
type StatsCache struct {
	rdb *redis.Client
}

func NewStatsCache(rdb *redis.Client) *StatsCache {
	return &StatsCache{rdb: rdb}
}

func (c *StatsCache) StoreStatistics(
	ctx context.Context,
	s stats.Statistics,
) error {

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statisticsKey, b, 0).Err()
}

// LoadStatistics returns the mirrored snapshot, or ok=false when none
// has been written yet.
func (c *StatsCache) LoadStatistics(
	ctx context.Context,
) (stats.Statistics, bool, error) {

	b, err := c.rdb.Get(ctx, statisticsKey).Bytes()
	if err == redis.Nil {
		return stats.Statistics{}, false, nil
	}
	if err != nil {
		return stats.Statistics{}, false, err
	}

	var s stats.Statistics
	if err := json.Unmarshal(b, &s); err != nil {
		return stats.Statistics{}, false, err
	}
	return s, true, nil
}

// Compile-time check
var _ stats.SnapshotStore = (*StatsCache)(nil)
