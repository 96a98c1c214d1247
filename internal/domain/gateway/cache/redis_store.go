package cache

import (
	"context"
	"time"

	"travel-weather-api/pkg/log"
	"travel-weather-api/pkg/redis"
)

// RedisStore is the shared Store backend for multi-instance deployments.
// Backend failures are logged and reported as misses, never returned.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Store backed by the given redis client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Exists reports whether a live entry is present for key
func (s *RedisStore) Exists(ctx context.Context, key string) bool {
	count, err := s.client.Exists(ctx, key)
	if err != nil {
		log.Warnf("cache exists failed for key %s: %v", key, err)
		return false
	}
	return count > 0
}

// Get returns the value for key and whether a live entry was found
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	if !s.Exists(ctx, key) {
		return "", false
	}

	value, err := s.client.Get(ctx, key)
	if err != nil {
		log.Warnf("cache get failed for key %s: %v", key, err)
		return "", false
	}
	if value == "" {
		// expired between the exists check and the read
		return "", false
	}
	return value, true
}

// SetWithTTL stores value under key, replacing any previous entry
func (s *RedisStore) SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl); err != nil {
		log.Errorf("cache set failed for key %s: %v", key, err)
	}
}
