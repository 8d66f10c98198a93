package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"biasharaBack/internal/models"
)

// EntityCache is a read-through Redis cache for entity documents. A miss is
// reported as models.ErrNoRecord so callers fall back to the store.
type EntityCache struct {
	RDB *redis.Client
	TTL time.Duration
}

func (c *EntityCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.RDB.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", models.ErrNoRecord
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *EntityCache) Set(ctx context.Context, key, value string) error {
	return c.RDB.Set(ctx, key, value, c.TTL).Err()
}

func (c *EntityCache) Del(ctx context.Context, keys ...string) error {
	return c.RDB.Del(ctx, keys...).Err()
}
