package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// TrendingKey is the sorted set holding artwork ids scored by views
	TrendingKey = "trending:artworks"

	// TrendingCap is the maximum number of artworks kept in the ranking
	TrendingCap = 100

	// TrendingTTL expires the ranking when no views arrive for a week
	TrendingTTL = 7 * 24 * time.Hour
)

// TrendingCache ranks artworks by recent view activity.
// Using an interface enables testing with mocks and potential future backends.
type TrendingCache interface {
	// Bump increases an artwork's score by one view.
	// Uses pipeline: ZINCRBY + ZREMRANGEBYRANK (maintain cap) + EXPIRE (refresh TTL)
	Bump(ctx context.Context, artworkID int64) error

	// Remove drops an artwork from the ranking (after deletion).
	Remove(ctx context.Context, artworkID int64) error

	// Top returns up to limit artwork ids, highest score first.
	Top(ctx context.Context, limit int) ([]int64, error)

	// Size returns the number of ranked artworks.
	Size(ctx context.Context) (int64, error)
}

// RedisTrendingCache implements TrendingCache using a Redis sorted set.
type RedisTrendingCache struct {
	client *redis.Client
}

// NewTrendingCache creates a TrendingCache backed by Redis.
func NewTrendingCache(client *redis.Client) TrendingCache {
	return &RedisTrendingCache{client: client}
}

// Bump increments the artwork's view score using a pipeline.
// Pipeline: ZINCRBY + ZREMRANGEBYRANK (trim to cap) + EXPIRE (refresh TTL)
func (c *RedisTrendingCache) Bump(ctx context.Context, artworkID int64) error {
	member := strconv.FormatInt(artworkID, 10)

	pipe := c.client.Pipeline()

	pipe.ZIncrBy(ctx, TrendingKey, 1, member)

	// Maintain cap: drop the lowest-scored members beyond the cap.
	pipe.ZRemRangeByRank(ctx, TrendingKey, 0, int64(-TrendingCap-1))

	pipe.Expire(ctx, TrendingKey, TrendingTTL)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("bump trending score: %w", err)
	}

	return nil
}

// Remove drops the artwork from the ranking.
func (c *RedisTrendingCache) Remove(ctx context.Context, artworkID int64) error {
	member := strconv.FormatInt(artworkID, 10)

	if err := c.client.ZRem(ctx, TrendingKey, member).Err(); err != nil {
		return fmt.Errorf("remove from trending: %w", err)
	}

	return nil
}

// Top returns the highest-scored artwork ids, best first.
func (c *RedisTrendingCache) Top(ctx context.Context, limit int) ([]int64, error) {
	if limit <= 0 || limit > TrendingCap {
		limit = TrendingCap
	}

	members, err := c.client.ZRevRange(ctx, TrendingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read trending ranking: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue // Skip malformed members
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Size returns the number of ranked artworks.
func (c *RedisTrendingCache) Size(ctx context.Context) (int64, error) {
	n, err := c.client.ZCard(ctx, TrendingKey).Result()
	if err != nil {
		return 0, fmt.Errorf("trending size: %w", err)
	}
	return n, nil
}
