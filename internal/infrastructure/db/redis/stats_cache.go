package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

const defaultStatsTTL = 10 * time.Minute

// StatsCache stores computed profile statistics as JSON.
// Key format: stats:<user_id>:<YYYY-MM-DD>
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
// Entries expire after ttl, or defaultStatsTTL when ttl is not positive.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get reports whether stats for userID are cached for day.
func (c *StatsCache) Get(ctx context.Context, userID, day string) (*domain.UserStats, bool, error) {
	raw, err := c.client.Get(ctx, statsKey(userID, day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stats cache get: %w", err)
	}

	var stats domain.UserStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, true, nil
}

func (c *StatsCache) Set(ctx context.Context, userID, day string, stats domain.UserStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey(userID, day), raw, c.ttl).Err()
}

// Invalidate drops the cached stats so the next read recomputes them.
func (c *StatsCache) Invalidate(ctx context.Context, userID, day string) error {
	return c.client.Del(ctx, statsKey(userID, day)).Err()
}

func statsKey(userID, day string) string {
	return fmt.Sprintf("stats:%s:%s", userID, day)
}
