package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps the token in Redis under a single key, for setups where
// the session outlives the local filesystem (shared demo boxes, containers).
type RedisStore struct {
	Client *redis.Client
	Key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{
		Client: client,
		Key:    key,
	}
}

// InitializeRedis creates a Redis client for session storage and tests the
// connection before handing it back.
func InitializeRedis(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
		PoolSize: 10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return client, nil
}

func (s *RedisStore) Set(ctx context.Context, token string) error {
	if s.Client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	// No expiry: token lifetime is the server's concern.
	if err := s.Client.Set(ctx, s.Key, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to store token in Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context) (string, error) {
	if s.Client == nil {
		return "", fmt.Errorf("redis client not initialized")
	}
	token, err := s.Client.Get(ctx, s.Key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token from Redis: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if s.Client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	if err := s.Client.Del(ctx, s.Key).Err(); err != nil {
		return fmt.Errorf("failed to clear token from Redis: %w", err)
	}
	return nil
}
