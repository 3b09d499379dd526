package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/italosilvaf/TesteSolfacil/internal/domain"
)

const (
	// KeyLastPartners caches the most recently registered partners.
	KeyLastPartners = "rankings:last_partners"
	// KeyTopPlants caches the highest-capacity plants.
	KeyTopPlants = "rankings:top_plants"
)

// RankingCache keeps the two ranking query results in Redis. Every cache
// failure degrades to a miss so callers fall back to the database.
type RankingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRankingCache builds the cache. A nil client disables caching.
func NewRankingCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RankingCache {
	return &RankingCache{client: client, ttl: ttl, logger: logger}
}

// GetPartners returns the cached partner ranking, if present.
func (c *RankingCache) GetPartners(ctx context.Context, key string) ([]domain.Partner, bool) {
	var partners []domain.Partner
	if !c.get(ctx, key, &partners) {
		return nil, false
	}
	return partners, true
}

// SetPartners stores a partner ranking.
func (c *RankingCache) SetPartners(ctx context.Context, key string, partners []domain.Partner) {
	c.set(ctx, key, partners)
}

// GetPlants returns the cached plant ranking, if present.
func (c *RankingCache) GetPlants(ctx context.Context, key string) ([]domain.Plant, bool) {
	var plants []domain.Plant
	if !c.get(ctx, key, &plants) {
		return nil, false
	}
	return plants, true
}

// SetPlants stores a plant ranking.
func (c *RankingCache) SetPlants(ctx context.Context, key string, plants []domain.Plant) {
	c.set(ctx, key, plants)
}

// Invalidate drops the given keys after a write.
func (c *RankingCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (c *RankingCache) get(ctx context.Context, key string, target any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *RankingCache) set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
