package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sge-logistics/internal/core/cache"
	"sge-logistics/internal/features/shipments/domain"
)

const statsCacheKey = "dashboard_stats"

// RedisStatsCache implements ports.StatsCache using the cache adaptation.
// Dashboard stats are recomputed from a full scan, so a short TTL keeps the
// admin dashboard cheap without letting the numbers drift for long.
type RedisStatsCache struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisStatsCache creates a new RedisStatsCache.
func NewRedisStatsCache(c cache.Cache, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{
		cache: c,
		ttl:   ttl,
	}
}

// Get retrieves cached stats. Returns (nil, nil) on a miss.
func (r *RedisStatsCache) Get(ctx context.Context) (*domain.DashboardStats, error) {
	data, err := r.cache.Get(ctx, statsCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stats from cache: %w", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return &stats, nil
}

// Set stores stats with the configured TTL.
func (r *RedisStatsCache) Set(ctx context.Context, stats domain.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := r.cache.Set(ctx, statsCacheKey, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save stats to cache: %w", err)
	}

	return nil
}
