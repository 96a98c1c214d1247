package activity

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"travel-weather-api/internal/domain/entity"
	"travel-weather-api/internal/domain/model"
	"travel-weather-api/internal/domain/usecase/weather"
	"travel-weather-api/pkg/msg"
	"travel-weather-api/pkg/util/numberutils"
)

const (
	maxSuggestCities = 5
	maxRankedPlaces  = 5
	indoorFallback   = "Consider indoor plans (museums, cinema, gym)."
)

type activityUseCase struct {
	weatherUseCase weather.UseCase
}

func NewActivityUseCase(weatherUseCase weather.UseCase) UseCase {
	return &activityUseCase{weatherUseCase: weatherUseCase}
}

// FindBestDay finds the best day in the next seven for an activity in a city
func (uc *activityUseCase) FindBestDay(ctx context.Context, city string, activity string) (string, error) {
	profile, ok := entity.LookupProfile(activity)
	if !ok {
		return "", fmt.Errorf("%w '%s'", ErrUnknownActivity, activity)
	}

	data := uc.weatherUseCase.GetWeatherData(ctx, city)
	if data.Failed() {
		return fmt.Sprintf("Weather not found for %s", city), nil
	}

	var best *model.ForecastDay
	bestScore := -1
	for i := range data.Forecast {
		if i >= 7 {
			break
		}
		_, score := Evaluate(data.Forecast[i], profile)
		if score > bestScore {
			bestScore = score
			best = &data.Forecast[i]
		}
	}

	if best == nil {
		return msg.GetMessage("activity.no-good-day", activity, city), nil
	}

	return fmt.Sprintf(
		"Best day for %s in %s: %s — %s\nTemp H %.0f°C / L %.0f°C, Rain %d%%, Score %d/100",
		activity, city,
		strOr(best.Date, "Unknown"), strOr(best.Condition, "Unknown"),
		floatOr(best.TempHighC), floatOr(best.TempLowC), intOr(best.Precip),
		bestScore,
	), nil
}

// SuggestActivities suggests top activities per day for up to five cities
// over the next days (clamped to 1..7)
func (uc *activityUseCase) SuggestActivities(ctx context.Context, cities []string, days int) string {
	days = numberutils.ClampInt(days, 1, 7)
	if len(cities) > maxSuggestCities {
		cities = cities[:maxSuggestCities]
	}

	var lines []string
	for _, city := range cities {
		data := uc.weatherUseCase.GetWeatherData(ctx, city)
		if data.Failed() {
			lines = append(lines, fmt.Sprintf("Weather not found for %s", city))
			continue
		}

		lines = append(lines, fmt.Sprintf("Activity suggestions for %s (next %d days):", data.City, days))
		for i, day := range data.Forecast {
			if i >= days {
				break
			}
			lines = append(lines, suggestForDay(day))
		}
	}
	return strings.Join(lines, "\n")
}

type scoredActivity struct {
	name  string
	score int
}

// suggestForDay renders one forecast day with its top three suitable
// activities, or the indoor fallback when nothing qualifies.
func suggestForDay(day model.ForecastDay) string {
	var suitable []scoredActivity
	for name, profile := range entity.Profiles() {
		if ok, score := Evaluate(day, profile); ok {
			suitable = append(suitable, scoredActivity{name: name, score: score})
		}
	}

	prefix := fmt.Sprintf("- %s %s %.0f°C:",
		strOr(day.Date, "Unknown"), strOr(day.Condition, "Unknown"), floatOr(day.TempHighC))

	if len(suitable) == 0 {
		return prefix + " " + indoorFallback
	}

	sort.Slice(suitable, func(i, j int) bool {
		if suitable[i].score != suitable[j].score {
			return suitable[i].score > suitable[j].score
		}
		return suitable[i].name > suitable[j].name
	})
	if len(suitable) > 3 {
		suitable = suitable[:3]
	}

	picks := make([]string, len(suitable))
	for i, s := range suitable {
		picks[i] = fmt.Sprintf("%s (score %d)", s.name, s.score)
	}
	return prefix + " " + strings.Join(picks, ", ")
}

type goodDay struct {
	day       string
	date      string
	condition string
	score     int
	tempHigh  float64
	tempLow   float64
	precip    int
	wind      float64
}

type placeRecommendation struct {
	city        string
	goodDays    []goodDay
	bestScore   int
	numGoodDays int
}

// RankPlaces ranks the given cities for an activity over the next days
// (clamped to 1..10) by their best suitable day
func (uc *activityUseCase) RankPlaces(ctx context.Context, activity string, cities []string, days int) (string, error) {
	days = numberutils.ClampInt(days, 1, 10)
	profile, ok := entity.LookupProfile(activity)
	if !ok {
		return "", fmt.Errorf("%w '%s'. Available activities: %s",
			ErrUnknownActivity, activity, strings.Join(entity.ActivityNames(), ", "))
	}

	var places []placeRecommendation
	for _, city := range cities {
		data := uc.weatherUseCase.GetWeatherData(ctx, city)
		if data.Failed() || len(data.Forecast) == 0 {
			continue
		}

		var good []goodDay
		for i, day := range data.Forecast {
			if i >= days {
				break
			}
			suitable, score := Evaluate(day, profile)
			if !suitable {
				continue
			}
			good = append(good, goodDay{
				day:       strOr(day.Day, "Unknown"),
				date:      strOr(day.Date, "Unknown"),
				condition: strOr(day.Condition, ""),
				score:     score,
				tempHigh:  floatOr(day.TempHighC),
				tempLow:   floatOr(day.TempLowC),
				precip:    intOr(day.Precip),
				wind:      floatOr(day.WindKmh),
			})
		}
		if len(good) == 0 {
			continue
		}

		sort.SliceStable(good, func(i, j int) bool { return good[i].score > good[j].score })
		places = append(places, placeRecommendation{
			city:        data.City,
			goodDays:    good,
			bestScore:   good[0].score,
			numGoodDays: len(good),
		})
	}

	sort.SliceStable(places, func(i, j int) bool {
		if places[i].bestScore != places[j].bestScore {
			return places[i].bestScore > places[j].bestScore
		}
		return places[i].numGoodDays > places[j].numGoodDays
	})

	if len(places) == 0 {
		return msg.GetMessage("activity.no-places", activity, days), nil
	}
	if len(places) > maxRankedPlaces {
		places = places[:maxRankedPlaces]
	}

	lines := []string{fmt.Sprintf("Best places for %s in the next %d days:\n", activity, days)}
	for i, place := range places {
		lines = append(lines, fmt.Sprintf("%d. **%s** (%d good day%s)",
			i+1, place.city, place.numGoodDays, plural(place.numGoodDays)))

		shown := place.goodDays
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, d := range shown {
			lines = append(lines, fmt.Sprintf(
				"   • %s (%s): %s - %.0f°C/%.0f°C, Rain: %d%%, Wind: %.0fkm/h (Score: %d/100)",
				d.date, d.day, d.condition, d.tempHigh, d.tempLow, d.precip, d.wind, d.score))
		}
		if extra := len(place.goodDays) - 3; extra > 0 {
			lines = append(lines, fmt.Sprintf("   ... and %d more good day%s", extra, plural(extra)))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func strOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
