package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"travel-weather-api/internal/domain/gateway/api"
	"travel-weather-api/internal/domain/gateway/cache"
	"travel-weather-api/internal/domain/gateway/queue"
	"travel-weather-api/internal/domain/model"
	"travel-weather-api/pkg/log"
	"travel-weather-api/pkg/msg"
	"travel-weather-api/pkg/util/numberutils"
)

const snapshotKeyPrefix = "weather:"

type weatherUseCase struct {
	queueName   string
	snapshotTTL time.Duration
	apiGateway  api.WeatherGateway
	store       cache.Store
	queueSender queue.Sender
	now         func() time.Time
}

func NewWeatherUseCase(queueName string, snapshotTTL time.Duration, apiGateway api.WeatherGateway, store cache.Store, queueSender queue.Sender) UseCase {
	return &weatherUseCase{
		queueName:   queueName,
		snapshotTTL: snapshotTTL,
		apiGateway:  apiGateway,
		store:       store,
		queueSender: queueSender,
		now:         time.Now,
	}
}

// snapshotKey builds the per-city, per-day cache key. The date component makes
// every entry naturally roll over at midnight regardless of TTL.
func (uc *weatherUseCase) snapshotKey(city string) string {
	return snapshotKeyPrefix + strings.ToLower(city) + ":" + uc.now().Format("2006-01-02")
}

// GetWeatherData returns the snapshot for a city, reading the day's cache
// entry first and scraping the provider on a miss
func (uc *weatherUseCase) GetWeatherData(ctx context.Context, city string) *model.Snapshot {
	key := uc.snapshotKey(city)
	if raw, ok := uc.store.Get(ctx, key); ok && raw != "" {
		var snapshot model.Snapshot
		if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
			log.Warnf("Corrupt cache entry for key %s, refetching: %v", key, err)
		} else {
			log.Debugf(msg.GetMessage("weather.cache-hit", city))
			return &snapshot
		}
	}

	return uc.scrapeAndCache(ctx, city, key)
}

// scrapeAndCache resolves the city, pulls the ten day page and stores the
// result. Error snapshots are returned but never cached, so the next lookup
// retries.
func (uc *weatherUseCase) scrapeAndCache(ctx context.Context, city string, key string) *model.Snapshot {
	placeID, err := uc.apiGateway.ResolveLocation(ctx, city)
	if err != nil {
		log.Warnf(msg.GetMessage("weather.city-not-found", city))
		return &model.Snapshot{
			City:  city,
			Error: fmt.Sprintf("City '%s' not found on Weather.com", city),
		}
	}

	log.Infof(msg.GetMessage("weather.fetch-start", city))
	current, forecast, err := uc.apiGateway.FetchTenDay(ctx, placeID)
	if err != nil {
		log.Warnf(msg.GetMessage("weather.not-found", city))
		return &model.Snapshot{City: city, Error: "not found"}
	}

	snapshot := &model.Snapshot{
		City:          city,
		DateRetrieved: uc.now().Format("2006-01-02"),
		Current:       current,
		Forecast:      forecast,
	}

	if raw, err := json.Marshal(snapshot); err != nil {
		log.Errorf("Failed to marshal snapshot for city %s: %v", city, err)
	} else {
		uc.store.SetWithTTL(ctx, key, string(raw), uc.snapshotTTL)
		log.Debugf(msg.GetMessage("weather.snapshot-cached", city))
	}

	return snapshot
}

// CurrentWeather returns the formatted current conditions for a city
func (uc *weatherUseCase) CurrentWeather(ctx context.Context, city string) string {
	data := uc.GetWeatherData(ctx, city)
	if data.Failed() || data.Current == nil {
		return fmt.Sprintf("Weather not found for %s", city)
	}

	c := data.Current
	return fmt.Sprintf(
		"Current weather in %s\nTemp: %.1f°C (%.1f°F)\nCondition: %s\nHumidity: %d%% | Wind: %.0f km/h",
		data.City, c.TemperatureC, c.TemperatureF, c.Condition, c.Humidity, c.WindKmh,
	)
}

// Forecast returns a formatted forecast for the next days (clamped to 1..10)
func (uc *weatherUseCase) Forecast(ctx context.Context, city string, days int) string {
	days = numberutils.ClampInt(days, 1, 10)
	data := uc.GetWeatherData(ctx, city)
	if data.Failed() {
		return fmt.Sprintf("Weather not found for %s", city)
	}
	if len(data.Forecast) == 0 {
		return fmt.Sprintf("No forecast available for %s.", city)
	}

	out := []string{fmt.Sprintf("%d-day forecast for %s:", days, data.City)}
	for _, d := range data.Forecast {
		if len(out) > days {
			break
		}
		out = append(out, formatForecastDay(&d, ""))
	}
	return strings.Join(out, "\n")
}

// Summary returns a compact current plus three day summary
func (uc *weatherUseCase) Summary(ctx context.Context, city string) string {
	data := uc.GetWeatherData(ctx, city)
	if data.Failed() || data.Current == nil {
		return fmt.Sprintf("Weather not found for %s", city)
	}

	c := data.Current
	lines := []string{
		fmt.Sprintf("Weather Summary for %s", data.City),
		fmt.Sprintf("• Now: %s — %.1f°C (%.1f°F), Humidity %d%%, Wind %.0f km/h",
			c.Condition, c.TemperatureC, c.TemperatureF, c.Humidity, c.WindKmh),
		"• Next 3 days:",
	}
	for i, d := range data.Forecast {
		if i >= 3 {
			break
		}
		lines = append(lines, formatForecastDay(&d, "  - "))
	}
	return strings.Join(lines, "\n")
}

// formatForecastDay renders one forecast line. Fields the extractor could not
// read print as "?" instead of breaking the whole rendering.
func formatForecastDay(d *model.ForecastDay, prefix string) string {
	return fmt.Sprintf("%s%s: %s, H %s°C / L %s°C, Rain %s%%, Wind %s km/h",
		prefix,
		stringOrDefault(d.Date, "?"),
		stringOrDefault(d.Condition, "Unknown"),
		floatOrDefault(d.TempHighC, 0),
		floatOrDefault(d.TempLowC, 0),
		intOrDefault(d.Precip),
		floatOrDefault(d.WindKmh, 0),
	)
}

func stringOrDefault(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func floatOrDefault(v *float64, decimals int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

func intOrDefault(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}

// RefreshCity re-scrapes a city and replaces its cache entry
func (uc *weatherUseCase) RefreshCity(ctx context.Context, city string) error {
	snapshot := uc.scrapeAndCache(ctx, city, uc.snapshotKey(city))
	if snapshot.Failed() {
		return fmt.Errorf("refresh failed for city '%s': %s", city, snapshot.Error)
	}
	return nil
}

// EnqueueRefreshAll enqueues refresh messages for the given cities
func (uc *weatherUseCase) EnqueueRefreshAll(cities []string, requestID string) error {
	if len(cities) == 0 {
		return nil
	}

	messages := make([]queue.BatchMessage, len(cities))
	for i, city := range cities {
		messages[i] = queue.BatchMessage{
			MessageID: fmt.Sprintf("refresh-%s-%d", requestID, i),
			Body:      model.RefreshMessage{City: city, RequestID: requestID},
		}
	}

	result, err := uc.queueSender.SendMessageBatch(uc.queueName, messages)
	if err != nil {
		return fmt.Errorf("failed to enqueue refresh batch: %w", err)
	}

	for _, failedID := range result.Failed {
		log.Warnf("Failed to enqueue refresh message %s", failedID)
	}
	log.Infof("Enqueued %d refresh messages, %d failed (request %s)",
		len(result.Successful), len(result.Failed), requestID)
	return nil
}
