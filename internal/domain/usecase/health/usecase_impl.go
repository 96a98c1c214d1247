package health

import (
	"travel-weather-api/internal/domain/gateway/cache"
	"travel-weather-api/internal/domain/model"
)

type healthUseCase struct {
	cacheGateway cache.HealthGateway
}

func NewHealthUseCase(cacheGateway cache.HealthGateway) UseCase {
	return &healthUseCase{cacheGateway: cacheGateway}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	cacheHealth := useCase.cacheGateway.Health()

	overallStatus := model.StatusUp
	if cacheHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		Cache:  cacheHealth,
	}
}
