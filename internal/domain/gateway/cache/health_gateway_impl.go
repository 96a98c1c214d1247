package cache

import (
	"context"
	"time"

	"travel-weather-api/internal/domain/model"
	"travel-weather-api/pkg/redis"
)

// RedisHealthGateway reports the health of the redis cache backend by
// running a full ping plus round-trip check against it.
type RedisHealthGateway struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{
		client:  client,
		timeout: 5 * time.Second,
	}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), gateway.timeout)
	defer cancel()

	if err := redis.HealthCheck(ctx, gateway.client); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"backend": "redis",
				"error":   err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"backend": "redis"},
	}
}

// MemoryHealthGateway reports the health of the in-process cache backend.
// The map backend has no external dependency, so it is always up.
type MemoryHealthGateway struct{}

func NewMemoryHealthGateway() *MemoryHealthGateway {
	return &MemoryHealthGateway{}
}

func (gateway *MemoryHealthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"backend": "memory"},
	}
}
