package activity

import (
	"travel-weather-api/internal/domain/entity"
	"travel-weather-api/internal/domain/model"
)

// Evaluate scores one forecast day against an activity profile on a 0..100
// scale and reports whether the day is suitable (score of 75 or more).
// Fields the extractor could not read are skipped, never penalized.
func Evaluate(day model.ForecastDay, profile entity.ActivityProfile) (bool, int) {
	score := 100

	if day.TempHighC != nil && *day.TempHighC < profile.MinTempC {
		score -= int((profile.MinTempC - *day.TempHighC) * 3)
	}
	if day.Precip != nil && *day.Precip > profile.MaxPrecip {
		score -= (*day.Precip - profile.MaxPrecip) * 2
	}
	if day.WindKmh != nil && *day.WindKmh > profile.MaxWindKmh {
		score -= int(*day.WindKmh - profile.MaxWindKmh)
	}
	if profile.NeedSun && day.ConditionCode != nil && !entity.IsSunnyCode(*day.ConditionCode) {
		score -= 25
	}
	if profile.MinWindKmh != nil && day.WindKmh != nil && *day.WindKmh < *profile.MinWindKmh {
		score -= int(*profile.MinWindKmh - *day.WindKmh)
	}

	suitable := score >= 75
	if score < 0 {
		score = 0
	}
	return suitable, score
}
