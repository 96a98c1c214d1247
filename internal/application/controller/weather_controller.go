package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-weather-api/internal/domain/usecase/weather"
	"travel-weather-api/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/:city", controller.GetWeatherData)
	controller.api.GET("/weather/:city/current", controller.CurrentWeather)
	controller.api.GET("/weather/:city/forecast", controller.Forecast)
	controller.api.GET("/weather/:city/summary", controller.Summary)
	controller.api.POST("/weather/:city/refresh", controller.RefreshCity)
}

// GetWeatherData returns the raw snapshot for a city. Failed lookups come
// back as 404 with the error snapshot body, so callers still get the city
// and reason.
func (controller *WeatherController) GetWeatherData(c echo.Context) error {
	city := c.Param("city")

	snapshot := controller.useCase.GetWeatherData(c.Request().Context(), city)
	if snapshot.Failed() {
		return c.JSON(http.StatusNotFound, snapshot)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// CurrentWeather returns the formatted current conditions for a city
func (controller *WeatherController) CurrentWeather(c echo.Context) error {
	city := c.Param("city")

	return c.String(http.StatusOK, controller.useCase.CurrentWeather(c.Request().Context(), city))
}

// Forecast returns the formatted forecast for a city, up to days entries
func (controller *WeatherController) Forecast(c echo.Context) error {
	city := c.Param("city")
	days := numberutils.ToIntWithDefault(c.QueryParam("days"), 5)

	return c.String(http.StatusOK, controller.useCase.Forecast(c.Request().Context(), city, days))
}

// Summary returns the compact current plus three day summary for a city
func (controller *WeatherController) Summary(c echo.Context) error {
	city := c.Param("city")

	return c.String(http.StatusOK, controller.useCase.Summary(c.Request().Context(), city))
}

// RefreshCity forces a re-scrape of a city, replacing its cache entry
func (controller *WeatherController) RefreshCity(c echo.Context) error {
	city := c.Param("city")

	if err := controller.useCase.RefreshCity(c.Request().Context(), city); err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Snapshot refreshed", "city": city})
}
