// internal/persist/redis.go
package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ui_snapshot:"

// RedisStore persists snapshots as plain string values under a prefixed
// namespace key. No TTL: the snapshot lives until the next overwrite.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+namespace).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis load: %w", err)
	}
	return data, nil
}

func (r *RedisStore) Save(ctx context.Context, namespace string, data []byte) error {
	if err := r.client.Set(ctx, redisKeyPrefix+namespace, data, 0).Err(); err != nil {
		return fmt.Errorf("redis save: %w", err)
	}
	return nil
}
