package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"travel-weather-api/internal/domain/model"
	"travel-weather-api/internal/domain/usecase/weather"
	"travel-weather-api/pkg/log"
	"travel-weather-api/pkg/msg"
)

// RefreshProcessor consumes refresh messages and re-scrapes the named city.
type RefreshProcessor struct {
	weatherUseCase weather.UseCase
}

func NewRefreshProcessor(weatherUseCase weather.UseCase) *RefreshProcessor {
	return &RefreshProcessor{
		weatherUseCase: weatherUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *RefreshProcessor) HandleMessage(message *types.Message) error {
	if message == nil || message.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var refresh model.RefreshMessage
	if err := json.Unmarshal([]byte(*message.Body), &refresh); err != nil {
		return fmt.Errorf("failed to unmarshal refresh message body: %w", err)
	}
	if refresh.City == "" {
		return fmt.Errorf("refresh message without city")
	}

	log.Infof(msg.GetMessage("weather.refresh-start", refresh.City, refresh.RequestID))

	if err := p.weatherUseCase.RefreshCity(context.Background(), refresh.City); err != nil {
		return fmt.Errorf("failed to refresh city %s: %w", refresh.City, err)
	}

	log.Infof("Successfully refreshed snapshot for city: %s", refresh.City)
	return nil
}
