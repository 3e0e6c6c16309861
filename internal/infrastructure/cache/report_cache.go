package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/laundrify/backend/internal/domain/report"
)

// RedisReportCache stores computed reports in Redis with a TTL.
// Any Redis failure degrades to a cache miss; reports are always
// recomputable from the database.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisReportCache creates a report cache on the given client
func NewRedisReportCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisReportCache {
	return &RedisReportCache{client: client, ttl: ttl, logger: logger}
}

// Get fetches a cached report. The second return is false on miss,
// decode failure, or Redis error.
func (c *RedisReportCache) Get(ctx context.Context, key string) (*report.ReportsData, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var data report.ReportsData
	if err := json.Unmarshal(payload, &data); err != nil {
		c.logger.Warn("report cache entry corrupted", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &data, true
}

// Set stores a computed report under the key
func (c *RedisReportCache) Set(ctx context.Context, key string, data *report.ReportsData) {
	payload, err := json.Marshal(data)
	if err != nil {
		c.logger.Warn("report cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
