package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/disaster_response_system/internal/models"
)

const snapshotCacheKey = "snapshot:latest"

// SnapshotCache кэширует последний опубликованный снимок в Redis, чтобы
// перезапущенный процесс мог отдавать данные до завершения первого
// обращения к провайдеру погоды. Долговечность не гарантируется.
type SnapshotCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewSnapshotCache создает кэш снимков; ttl обычно вдвое больше интервала обновления
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		redisClient: client,
		ttl:         ttl,
	}
}

// GetSnapshot пытается получить последний снимок из Redis.
// Отсутствие снимка не является ошибкой: возвращается (nil, nil).
func (c *SnapshotCache) GetSnapshot(ctx context.Context) (*models.Snapshot, error) {
	val, err := c.redisClient.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	snapshot := &models.Snapshot{}
	if err := json.Unmarshal(val, snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot from cache: %w", err)
	}
	return snapshot, nil
}

// SetSnapshot сохраняет снимок в Redis
func (c *SnapshotCache) SetSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, snapshotCacheKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot in cache: %w", err)
	}
	return nil
}
