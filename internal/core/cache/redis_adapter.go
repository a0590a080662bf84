package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Cache = (*RedisAdapter)(nil)

// RedisAdapter backs the Cache port with a Redis server, the shared store used
// when orders and the delivery notice must survive across replicas.
type RedisAdapter struct {
	client *redis.Client
}

// NewRedisAdapter parses a redis:// or rediss:// URL (REDIS_URL) and builds a client.
// No connection is made until the first command; use Ping to fail fast at startup.
func NewRedisAdapter(redisURL string) (*RedisAdapter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	return &RedisAdapter{client: redis.NewClient(opts)}, nil
}

// Get maps redis.Nil to ErrCacheMiss so callers never import go-redis.
func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, fmt.Errorf("%w: %s", ErrCacheMiss, key)
	case err != nil:
		return nil, wrapKeyErr("get", key, err)
	}
	return val, nil
}

// Set writes the value; Redis treats a zero ttl as no expiry, matching the port.
func (r *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return wrapKeyErr("set", key, r.client.Set(ctx, key, value, ttl).Err())
}

// Delete is idempotent: DEL on a missing key succeeds.
func (r *RedisAdapter) Delete(ctx context.Context, key string) error {
	return wrapKeyErr("delete", key, r.client.Del(ctx, key).Err())
}

// Ping backs the /health probe and the startup check.
func (r *RedisAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: redis unreachable: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *RedisAdapter) Close() error {
	return r.client.Close()
}

func wrapKeyErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("cache: %s %s: %w", op, key, err)
}
