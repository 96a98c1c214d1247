package api

import (
	"context"

	"travel-weather-api/internal/domain/model"
)

// WeatherGateway resolves cities against the weather provider and pulls
// their ten-day pages.
type WeatherGateway interface {
	// ResolveLocation maps a city name to the provider's place id. Returns
	// ErrLocationNotFound when the provider has no match.
	ResolveLocation(ctx context.Context, city string) (string, error)
	// FetchTenDay downloads and parses the ten-day page for a place id.
	FetchTenDay(ctx context.Context, placeID string) (*model.CurrentConditions, []model.ForecastDay, error)
}
