package api

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/PuerkitoBio/goquery"

	"travel-weather-api/internal/domain/gateway/cache"
	"travel-weather-api/internal/domain/model"
	"travel-weather-api/internal/domain/model/external"
	pkghttp "travel-weather-api/pkg/http"
	"travel-weather-api/pkg/log"
	"travel-weather-api/pkg/msg"
)

const (
	locationSearchPath = "/api/v1/p/redux-dal"
	tenDayPathFormat   = "/weather/tenday/l/%s"
	placeIDKeyPrefix   = "placeid:"
)

// defaultBrowserHeaders mimics a desktop browser so the provider serves the
// full page instead of a bot challenge.
func defaultBrowserHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
		"Connection":      "keep-alive",
	}
}

type weatherGateway struct {
	client     *pkghttp.Client
	placeIDs   cache.Store
	placeIDTTL time.Duration
	jitter     func(ctx context.Context) error
}

// GatewayConfig carries the provider settings read from application.yml.
type GatewayConfig struct {
	BaseURL      string
	FetchTimeout time.Duration
	PlaceIDTTL   time.Duration
}

// NewWeatherGateway builds the provider gateway backed by the given cache
// store for place id lookups.
func NewWeatherGateway(cfg GatewayConfig, store cache.Store) WeatherGateway {
	client := pkghttp.NewHttpClient(cfg.BaseURL, pkghttp.ClientOptions{
		FollowRedirect: true,
		DefaultHeaders: defaultBrowserHeaders(),
		ReadTimeout:    cfg.FetchTimeout,
	})

	return &weatherGateway{
		client:     client,
		placeIDs:   store,
		placeIDTTL: cfg.PlaceIDTTL,
		jitter:     sleepJitter,
	}
}

// sleepJitter waits 500-1000ms before a page fetch to keep request timing
// human-shaped.
func sleepJitter(ctx context.Context) error {
	delay := 500*time.Millisecond + time.Duration(rand.Int63n(int64(500*time.Millisecond)))
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *weatherGateway) ResolveLocation(ctx context.Context, city string) (string, error) {
	key := placeIDKeyPrefix + city
	if cached, ok := g.placeIDs.Get(ctx, key); ok && cached != "" {
		log.Debugf(msg.GetMessage("weather.placeid-cache-hit", city))
		return cached, nil
	}

	var searchResp external.LocationSearchResponse
	_, _, status, err := g.client.Request().
		WithMethod(pkghttp.POST).
		WithPath(locationSearchPath).
		WithBody(external.NewLocationSearchRequest(city)).
		WithSuccessResp(&searchResp).
		Execute()
	if err != nil {
		log.Warnf(msg.GetMessage("weather.search-failed", city, err))
		return "", &FetchError{URL: locationSearchPath, Status: status, Err: err}
	}

	ids := searchResp.PlaceIDs()
	if len(ids) == 0 {
		return "", ErrLocationNotFound
	}

	placeID := ids[0]
	g.placeIDs.SetWithTTL(ctx, key, placeID, g.placeIDTTL)
	log.Infof(msg.GetMessage("weather.resolved", city, placeID))
	return placeID, nil
}

func (g *weatherGateway) FetchTenDay(ctx context.Context, placeID string) (*model.CurrentConditions, []model.ForecastDay, error) {
	if err := g.jitter(ctx); err != nil {
		return nil, nil, err
	}

	path := fmt.Sprintf(tenDayPathFormat, placeID)
	body, status, err := g.client.GetRaw(path, nil, nil)
	if err != nil {
		log.Warnf(msg.GetMessage("weather.fetch-failed", placeID, err))
		return nil, nil, &FetchError{URL: path, Status: status, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, nil, &FetchError{URL: path, Status: status, Err: err}
	}

	return extractCurrent(doc), extractForecast(doc), nil
}
