package cache

import "travel-weather-api/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
