package health

import "travel-weather-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
