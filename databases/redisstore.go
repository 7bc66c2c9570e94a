package databases

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCommander is the subset of the go-redis client used by RedisStore
type RedisCommander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps every key as a plain redis string without expiry
type RedisStore struct {
	client RedisCommander
}

// NewRedisStore connects to addr and verifies the connection
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, func() error, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return NewRedisStoreWithClient(client), client.Close, nil
}

// NewRedisStoreWithClient wraps an existing client
func NewRedisStoreWithClient(client RedisCommander) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the raw value stored under key
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Set overwrites the value stored under key
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Delete removes key
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
