package weather

import (
	"context"

	"travel-weather-api/internal/domain/model"
)

type UseCase interface {
	// GetWeatherData returns the snapshot for a city, reading the day's cache
	// entry first and scraping the provider on a miss. Failures come back as a
	// snapshot with the Error field set, never as a Go error.
	GetWeatherData(ctx context.Context, city string) *model.Snapshot

	// CurrentWeather returns the formatted current conditions for a city
	CurrentWeather(ctx context.Context, city string) string

	// Forecast returns a formatted forecast for the next days (clamped to 1..10)
	Forecast(ctx context.Context, city string, days int) string

	// Summary returns a compact current plus three day summary
	Summary(ctx context.Context, city string) string

	// RefreshCity re-scrapes a city and replaces its cache entry
	RefreshCity(ctx context.Context, city string) error

	// EnqueueRefreshAll enqueues refresh messages for the given cities
	EnqueueRefreshAll(cities []string, requestID string) error
}
