package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-weather-api/internal/domain/entity"
	"travel-weather-api/internal/domain/model"
	"travel-weather-api/internal/domain/usecase/activity"
)

type ActivityController struct {
	api     *echo.Group
	useCase activity.UseCase
}

func NewActivityController(api *echo.Group, useCase activity.UseCase) *ActivityController {
	return &ActivityController{api: api, useCase: useCase}
}

// InitActivityRoutes initializes activity routes
func (controller *ActivityController) InitActivityRoutes() {
	controller.api.GET("/activities", controller.ListActivities)
	controller.api.GET("/activities/:city/best-day", controller.FindBestDay)
	controller.api.POST("/activities/suggest", controller.SuggestActivities)
	controller.api.POST("/activities/places", controller.RankPlaces)
}

// ListActivities returns the registered activity names
func (controller *ActivityController) ListActivities(c echo.Context) error {
	return c.JSON(http.StatusOK, entity.ActivityNames())
}

// FindBestDay returns the best day in the next seven for an activity in a city
func (controller *ActivityController) FindBestDay(c echo.Context) error {
	city := c.Param("city")
	activityName := c.QueryParam("activity")
	if activityName == "" {
		activityName = "outdoor"
	}

	result, err := controller.useCase.FindBestDay(c.Request().Context(), city, activityName)
	if err != nil {
		if errors.Is(err, activity.ErrUnknownActivity) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.String(http.StatusOK, result)
}

// SuggestActivities returns per-day activity suggestions for a list of cities
func (controller *ActivityController) SuggestActivities(c echo.Context) error {
	var dto model.SuggestActivitiesDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if len(dto.Cities) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cities is required"})
	}

	days := dto.Days
	if days == 0 {
		days = 3
	}

	return c.String(http.StatusOK, controller.useCase.SuggestActivities(c.Request().Context(), dto.Cities, days))
}

// RankPlaces ranks the given cities for an activity over the next days
func (controller *ActivityController) RankPlaces(c echo.Context) error {
	var dto model.RankPlacesDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if dto.Activity == "" || len(dto.Cities) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "activity and cities are required"})
	}

	days := dto.Days
	if days == 0 {
		days = 7
	}

	result, err := controller.useCase.RankPlaces(c.Request().Context(), dto.Activity, dto.Cities, days)
	if err != nil {
		if errors.Is(err, activity.ErrUnknownActivity) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.String(http.StatusOK, result)
}
