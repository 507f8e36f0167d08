package localstorage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisNamespace is the hash key used when none is configured.
const DefaultRedisNamespace = "gophsession:local_storage"

type RedisStorage struct {
	rdb       redis.UniversalClient
	namespace string
}

func NewRedisStorage(rdb redis.UniversalClient, namespace string) *RedisStorage {
	if namespace == "" {
		namespace = DefaultRedisNamespace
	}
	return &RedisStorage{rdb: rdb, namespace: namespace}
}

// OpenRedis connects using a redis:// URL and checks the server is reachable.
func OpenRedis(ctx context.Context, url, namespace string) (*RedisStorage, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStorage(rdb, namespace), nil
}

func (s *RedisStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.HGet(ctx, s.namespace, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get item[%s]: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisStorage) SetItems(ctx context.Context, items map[string]string) error {
	if len(items) == 0 {
		return nil
	}
	values := make([]any, 0, len(items)*2)
	for k, v := range items {
		values = append(values, k, v)
	}
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, s.namespace, values...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set items: %w", err)
	}
	return nil
}

func (s *RedisStorage) RemoveItems(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.rdb.HDel(ctx, s.namespace, keys...).Err(); err != nil {
		return fmt.Errorf("failed to remove items: %w", err)
	}
	return nil
}

func (s *RedisStorage) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.namespace).Err(); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *RedisStorage) Persistent() bool { return true }

func (s *RedisStorage) Close() error { return s.rdb.Close() }
