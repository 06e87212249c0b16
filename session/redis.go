package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps records in Redis so several processes can share one signed-in
// identity. Keys are namespaced as "<prefix>:<profile>:<key>".
type RedisBackend struct {
	redis   redis.UniversalClient
	prefix  string
	profile string
	ttl     time.Duration
}

// NewRedisBackend returns a Redis-backed store. A zero ttl keeps records until they
// are removed; a positive ttl is refreshed on every Save.
func NewRedisBackend(client redis.UniversalClient, prefix, profile string, ttl time.Duration) *RedisBackend {
	if prefix == "" {
		prefix = "edu"
	}
	if profile == "" {
		profile = "default"
	}
	if ttl < 0 {
		ttl = 0
	}
	return &RedisBackend{
		redis:   client,
		prefix:  prefix,
		profile: profile,
		ttl:     ttl,
	}
}

func (r *RedisBackend) key(key string) string {
	return r.prefix + ":" + r.profile + ":" + key
}

func (r *RedisBackend) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.redis.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return data, nil
}

func (r *RedisBackend) Save(ctx context.Context, key string, value []byte) error {
	if err := r.redis.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

func (r *RedisBackend) Remove(ctx context.Context, key string) error {
	if err := r.redis.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}
