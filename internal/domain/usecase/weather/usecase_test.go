package weather

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"travel-weather-api/internal/domain/gateway/cache"
	"travel-weather-api/internal/domain/gateway/queue"
	"travel-weather-api/internal/domain/model"
)

type fakeGateway struct {
	resolveCalls int
	fetchCalls   int
	resolveErr   error
	fetchErr     error
	current      *model.CurrentConditions
	forecast     []model.ForecastDay
}

func (g *fakeGateway) ResolveLocation(_ context.Context, city string) (string, error) {
	g.resolveCalls++
	if g.resolveErr != nil {
		return "", g.resolveErr
	}
	return "place-123", nil
}

func (g *fakeGateway) FetchTenDay(_ context.Context, placeID string) (*model.CurrentConditions, []model.ForecastDay, error) {
	g.fetchCalls++
	if g.fetchErr != nil {
		return nil, nil, g.fetchErr
	}
	return g.current, g.forecast, nil
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func sampleForecast() []model.ForecastDay {
	return []model.ForecastDay{
		{
			Day: strPtr("Tue 01"), Date: strPtr("Tue 01"),
			Condition: strPtr("Sunny"), ConditionCode: intPtr(0),
			TempHighC: floatPtr(25), TempLowC: floatPtr(15),
			Precip: intPtr(10), WindKmh: floatPtr(12),
		},
		{
			Day: strPtr("Wed 02"), Date: strPtr("Wed 02"),
			Condition: strPtr("Light Rain"), ConditionCode: intPtr(63),
			TempHighC: floatPtr(18), TempLowC: floatPtr(11),
			Precip: intPtr(70), WindKmh: floatPtr(20),
		},
	}
}

func newTestUseCase(gateway *fakeGateway) (*weatherUseCase, cache.Store) {
	store := cache.NewMemoryStore()
	uc := &weatherUseCase{
		queueName:   "weather-refresh",
		snapshotTTL: 6 * time.Hour,
		apiGateway:  gateway,
		store:       store,
		now:         func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) },
	}
	return uc, store
}

func TestGetWeatherDataCachesSuccess(t *testing.T) {
	gateway := &fakeGateway{
		current:  &model.CurrentConditions{TemperatureC: 21.5, TemperatureF: 70.7, Condition: "Sunny", Humidity: 40, WindKmh: 9},
		forecast: sampleForecast(),
	}
	uc, store := newTestUseCase(gateway)
	ctx := context.Background()

	first := uc.GetWeatherData(ctx, "Paris")
	if first.Failed() {
		t.Fatalf("unexpected error snapshot: %s", first.Error)
	}
	if first.City != "Paris" || first.DateRetrieved != "2026-08-30" {
		t.Errorf("snapshot header = %q / %q", first.City, first.DateRetrieved)
	}
	if !store.Exists(ctx, "weather:paris:2026-08-30") {
		t.Error("successful snapshot should be cached under the lowercased city key")
	}

	second := uc.GetWeatherData(ctx, "Paris")
	if gateway.fetchCalls != 1 {
		t.Errorf("fetch calls = %d, want 1 (second lookup must hit cache)", gateway.fetchCalls)
	}
	if second.City != first.City || len(second.Forecast) != len(first.Forecast) {
		t.Error("cached snapshot differs from the original")
	}
}

func TestGetWeatherDataCityNotFound(t *testing.T) {
	gateway := &fakeGateway{resolveErr: errors.New("no results")}
	uc, store := newTestUseCase(gateway)
	ctx := context.Background()

	snapshot := uc.GetWeatherData(ctx, "Nowhereville")
	if snapshot.Error != "City 'Nowhereville' not found on Weather.com" {
		t.Errorf("Error = %q", snapshot.Error)
	}
	if store.Exists(ctx, "weather:nowhereville:2026-08-30") {
		t.Error("error snapshots must not be cached")
	}

	uc.GetWeatherData(ctx, "Nowhereville")
	if gateway.resolveCalls != 2 {
		t.Errorf("resolve calls = %d, want 2 (failures must be retried)", gateway.resolveCalls)
	}
}

func TestGetWeatherDataFetchFailed(t *testing.T) {
	gateway := &fakeGateway{fetchErr: errors.New("timeout")}
	uc, store := newTestUseCase(gateway)
	ctx := context.Background()

	snapshot := uc.GetWeatherData(ctx, "Paris")
	if snapshot.Error != "not found" {
		t.Errorf("Error = %q, want not found", snapshot.Error)
	}
	if snapshot.City != "Paris" {
		t.Errorf("City = %q, want Paris", snapshot.City)
	}
	if store.Exists(ctx, "weather:paris:2026-08-30") {
		t.Error("failed fetches must not be cached")
	}
}

func TestGetWeatherDataCorruptCacheEntryRefetches(t *testing.T) {
	gateway := &fakeGateway{
		current:  &model.CurrentConditions{Condition: "Sunny"},
		forecast: sampleForecast(),
	}
	uc, store := newTestUseCase(gateway)
	ctx := context.Background()

	store.SetWithTTL(ctx, "weather:paris:2026-08-30", "{not json", time.Hour)

	snapshot := uc.GetWeatherData(ctx, "Paris")
	if snapshot.Failed() {
		t.Fatalf("unexpected error snapshot: %s", snapshot.Error)
	}
	if gateway.fetchCalls != 1 {
		t.Errorf("fetch calls = %d, want 1 (corrupt entry must be treated as a miss)", gateway.fetchCalls)
	}
}

func TestCurrentWeatherFormatting(t *testing.T) {
	gateway := &fakeGateway{
		current:  &model.CurrentConditions{TemperatureC: 21.5, TemperatureF: 70.7, Condition: "Sunny", Humidity: 40, WindKmh: 9.4},
		forecast: sampleForecast(),
	}
	uc, _ := newTestUseCase(gateway)

	got := uc.CurrentWeather(context.Background(), "Paris")
	want := "Current weather in Paris\nTemp: 21.5°C (70.7°F)\nCondition: Sunny\nHumidity: 40% | Wind: 9 km/h"
	if got != want {
		t.Errorf("CurrentWeather =\n%q\nwant\n%q", got, want)
	}
}

func TestCurrentWeatherNotFound(t *testing.T) {
	gateway := &fakeGateway{resolveErr: errors.New("no results")}
	uc, _ := newTestUseCase(gateway)

	got := uc.CurrentWeather(context.Background(), "Nowhereville")
	if got != "Weather not found for Nowhereville" {
		t.Errorf("CurrentWeather = %q", got)
	}
}

func TestForecastClampsDays(t *testing.T) {
	gateway := &fakeGateway{
		current:  &model.CurrentConditions{Condition: "Sunny"},
		forecast: sampleForecast(),
	}
	uc, _ := newTestUseCase(gateway)

	got := uc.Forecast(context.Background(), "Paris", 0)
	if !strings.HasPrefix(got, "1-day forecast for Paris:") {
		t.Errorf("days=0 should clamp to 1, got %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected exactly one forecast line, got %q", got)
	}

	got = uc.Forecast(context.Background(), "Paris", 99)
	if !strings.HasPrefix(got, "10-day forecast for Paris:") {
		t.Errorf("days=99 should clamp to 10, got %q", got)
	}
}

func TestForecastLineFormat(t *testing.T) {
	gateway := &fakeGateway{
		current:  &model.CurrentConditions{Condition: "Sunny"},
		forecast: sampleForecast(),
	}
	uc, _ := newTestUseCase(gateway)

	got := uc.Forecast(context.Background(), "Paris", 2)
	if !strings.Contains(got, "Tue 01: Sunny, H 25°C / L 15°C, Rain 10%, Wind 12 km/h") {
		t.Errorf("missing first day line in %q", got)
	}
	if !strings.Contains(got, "Wed 02: Light Rain, H 18°C / L 11°C, Rain 70%, Wind 20 km/h") {
		t.Errorf("missing second day line in %q", got)
	}
}

func TestSummary(t *testing.T) {
	gateway := &fakeGateway{
		current:  &model.CurrentConditions{TemperatureC: 21.5, TemperatureF: 70.7, Condition: "Sunny", Humidity: 40, WindKmh: 9},
		forecast: sampleForecast(),
	}
	uc, _ := newTestUseCase(gateway)

	got := uc.Summary(context.Background(), "Paris")
	if !strings.HasPrefix(got, "Weather Summary for Paris") {
		t.Errorf("Summary header missing in %q", got)
	}
	if !strings.Contains(got, "• Now: Sunny — 21.5°C (70.7°F), Humidity 40%, Wind 9 km/h") {
		t.Errorf("Summary now-line missing in %q", got)
	}
	if !strings.Contains(got, "• Next 3 days:") {
		t.Errorf("Summary days header missing in %q", got)
	}
}

func TestRefreshCityReplacesCacheEntry(t *testing.T) {
	gateway := &fakeGateway{
		current:  &model.CurrentConditions{Condition: "Sunny"},
		forecast: sampleForecast(),
	}
	uc, store := newTestUseCase(gateway)
	ctx := context.Background()

	uc.GetWeatherData(ctx, "Paris")
	if gateway.fetchCalls != 1 {
		t.Fatalf("fetch calls = %d, want 1", gateway.fetchCalls)
	}

	if err := uc.RefreshCity(ctx, "Paris"); err != nil {
		t.Fatalf("RefreshCity returned error: %v", err)
	}
	if gateway.fetchCalls != 2 {
		t.Errorf("fetch calls = %d, want 2 (refresh must bypass the cache)", gateway.fetchCalls)
	}
	if !store.Exists(ctx, "weather:paris:2026-08-30") {
		t.Error("refresh should leave a cached snapshot behind")
	}
}

func TestRefreshCityReportsFailure(t *testing.T) {
	gateway := &fakeGateway{resolveErr: errors.New("no results")}
	uc, _ := newTestUseCase(gateway)

	if err := uc.RefreshCity(context.Background(), "Nowhereville"); err == nil {
		t.Error("expected error for failed refresh")
	}
}

type fakeSender struct {
	queueName string
	messages  []queue.BatchMessage
	err       error
}

func (s *fakeSender) SendMessage(queueName string, body any) error { return s.err }

func (s *fakeSender) SendMessageBatch(queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.queueName = queueName
	s.messages = append(s.messages, messages...)
	ids := make([]string, len(messages))
	for i, m := range messages {
		ids[i] = m.MessageID
	}
	return &queue.BatchResult{Successful: ids}, nil
}

func TestEnqueueRefreshAll(t *testing.T) {
	gateway := &fakeGateway{}
	uc, _ := newTestUseCase(gateway)
	sender := &fakeSender{}
	uc.queueSender = sender

	if err := uc.EnqueueRefreshAll([]string{"Paris", "London"}, "req-1"); err != nil {
		t.Fatalf("EnqueueRefreshAll returned error: %v", err)
	}
	if sender.queueName != "weather-refresh" {
		t.Errorf("queueName = %q", sender.queueName)
	}
	if len(sender.messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(sender.messages))
	}

	refresh, ok := sender.messages[0].Body.(model.RefreshMessage)
	if !ok {
		t.Fatalf("body type = %T, want model.RefreshMessage", sender.messages[0].Body)
	}
	if refresh.City != "Paris" || refresh.RequestID != "req-1" {
		t.Errorf("message body = %+v", refresh)
	}
}

func TestEnqueueRefreshAllEmpty(t *testing.T) {
	gateway := &fakeGateway{}
	uc, _ := newTestUseCase(gateway)

	if err := uc.EnqueueRefreshAll(nil, "req-1"); err != nil {
		t.Errorf("empty city list should be a no-op, got %v", err)
	}
}
