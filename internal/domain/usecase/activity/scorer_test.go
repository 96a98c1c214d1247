package activity

import (
	"testing"

	"travel-weather-api/internal/domain/entity"
	"travel-weather-api/internal/domain/model"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func day(high float64, precip int, wind float64, code int) model.ForecastDay {
	return model.ForecastDay{
		TempHighC:     floatPtr(high),
		Precip:        intPtr(precip),
		WindKmh:       floatPtr(wind),
		ConditionCode: intPtr(code),
	}
}

func TestEvaluate(t *testing.T) {
	beach := entity.ActivityProfile{
		Name: "beach", MinTempC: 24, NeedSun: true, MaxPrecip: 20, MaxWindKmh: 35,
	}

	tests := []struct {
		name         string
		day          model.ForecastDay
		profile      entity.ActivityProfile
		wantScore    int
		wantSuitable bool
	}{
		{
			// 12 for temperature plus 25 for the overcast sky
			name:         "cold cloudy beach day",
			day:          day(20, 10, 20, 3),
			profile:      beach,
			wantScore:    63,
			wantSuitable: false,
		},
		{
			name:         "perfect beach day",
			day:          day(28, 5, 10, 0),
			profile:      beach,
			wantScore:    100,
			wantSuitable: true,
		},
		{
			name:         "boundary score 75 is suitable",
			day:          day(28, 5, 10, 3),
			profile:      beach,
			wantScore:    75,
			wantSuitable: true,
		},
		{
			name:         "score 74 is not suitable",
			day:          day(28, 5, 36, 3),
			profile:      beach,
			wantScore:    74,
			wantSuitable: false,
		},
		{
			name:         "wind over limit",
			day:          day(28, 5, 45, 0),
			profile:      beach,
			wantScore:    90,
			wantSuitable: true,
		},
		{
			name:         "deep negative clamps to zero",
			day:          day(-20, 90, 80, 3),
			profile:      beach,
			wantScore:    0,
			wantSuitable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suitable, score := Evaluate(tt.day, tt.profile)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if suitable != tt.wantSuitable {
				t.Errorf("suitable = %v, want %v", suitable, tt.wantSuitable)
			}
		})
	}
}

func TestEvaluateMissingFieldsCarryNoPenalty(t *testing.T) {
	beach := entity.ActivityProfile{
		Name: "beach", MinTempC: 24, NeedSun: true, MaxPrecip: 20, MaxWindKmh: 35,
	}

	suitable, score := Evaluate(model.ForecastDay{}, beach)
	if score != 100 || !suitable {
		t.Errorf("empty day = (%v, %d), want (true, 100)", suitable, score)
	}

	// missing condition code must not trip the sun penalty
	partial := model.ForecastDay{TempHighC: floatPtr(28)}
	suitable, score = Evaluate(partial, beach)
	if score != 100 || !suitable {
		t.Errorf("partial day = (%v, %d), want (true, 100)", suitable, score)
	}
}

func TestEvaluateMinWind(t *testing.T) {
	kite, ok := entity.LookupProfile("kite_flying")
	if !ok {
		t.Fatal("kite_flying profile missing")
	}
	if kite.MinWindKmh == nil || *kite.MinWindKmh != 15 {
		t.Fatalf("kite_flying MinWindKmh = %v, want 15", kite.MinWindKmh)
	}

	// calm day loses a point per km/h under the minimum
	_, score := Evaluate(day(22, 5, 5, 0), kite)
	if score != 90 {
		t.Errorf("score = %d, want 90", score)
	}

	// windy enough is fine
	_, score = Evaluate(day(22, 5, 20, 0), kite)
	if score != 100 {
		t.Errorf("score = %d, want 100", score)
	}
}
