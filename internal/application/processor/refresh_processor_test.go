package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"travel-weather-api/internal/domain/model"
)

type fakeWeatherUseCase struct {
	refreshed  []string
	refreshErr error
}

func (f *fakeWeatherUseCase) GetWeatherData(ctx context.Context, city string) *model.Snapshot {
	return &model.Snapshot{City: city}
}

func (f *fakeWeatherUseCase) CurrentWeather(ctx context.Context, city string) string { return "" }

func (f *fakeWeatherUseCase) Forecast(ctx context.Context, city string, days int) string { return "" }

func (f *fakeWeatherUseCase) Summary(ctx context.Context, city string) string { return "" }

func (f *fakeWeatherUseCase) RefreshCity(ctx context.Context, city string) error {
	f.refreshed = append(f.refreshed, city)
	return f.refreshErr
}

func (f *fakeWeatherUseCase) EnqueueRefreshAll(cities []string, requestID string) error { return nil }

func TestHandleMessage(t *testing.T) {
	useCase := &fakeWeatherUseCase{}
	p := NewRefreshProcessor(useCase)

	body := `{"city":"Lisbon","requestId":"req-1"}`
	if err := p.HandleMessage(&types.Message{Body: aws.String(body)}); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(useCase.refreshed) != 1 || useCase.refreshed[0] != "Lisbon" {
		t.Errorf("refreshed = %v, want [Lisbon]", useCase.refreshed)
	}
}

func TestHandleMessageRefreshFailure(t *testing.T) {
	useCase := &fakeWeatherUseCase{refreshErr: errors.New("scrape failed")}
	p := NewRefreshProcessor(useCase)

	body := `{"city":"Lisbon","requestId":"req-1"}`
	if err := p.HandleMessage(&types.Message{Body: aws.String(body)}); err == nil {
		t.Error("expected error when refresh fails")
	}
}

func TestHandleMessageRejectsBadInput(t *testing.T) {
	p := NewRefreshProcessor(&fakeWeatherUseCase{})

	tests := []struct {
		name    string
		message *types.Message
	}{
		{"nil message", nil},
		{"nil body", &types.Message{}},
		{"invalid json", &types.Message{Body: aws.String("{not json")}},
		{"missing city", &types.Message{Body: aws.String(`{"requestId":"req-1"}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.HandleMessage(tt.message); err == nil {
				t.Error("expected error")
			}
		})
	}
}
