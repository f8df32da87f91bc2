package kv

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisCallTimeout = 3 * time.Second

// Redis keeps blobs in a Redis instance, for profiles that want the store
// off the local filesystem.
type Redis struct {
	client *redis.Client
}

// NewRedis builds a Redis-backed store.
func NewRedis(addr, password string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// Get reads the blob stored for key; redis.Nil means an absent key.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisCallTimeout)
	defer cancel()
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set writes the blob for key with no expiry.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, redisCallTimeout)
	defer cancel()
	return r.client.Set(ctx, key, value, 0).Err()
}

// Remove deletes the key; removing an absent key is not an error.
func (r *Redis) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, redisCallTimeout)
	defer cancel()
	if err := r.client.Del(ctx, key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

// Compile-time assertion that Redis implements Store.
var _ Store = (*Redis)(nil)
