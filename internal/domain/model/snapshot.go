package model

// CurrentConditions holds the observed conditions parsed from the provider's
// current-conditions block. TemperatureF is always derived from TemperatureC.
type CurrentConditions struct {
	TemperatureC  float64 `json:"temperature_c"`
	TemperatureF  float64 `json:"temperature_f"`
	Condition     string  `json:"condition"`
	ConditionCode int     `json:"condition_code"`
	Humidity      int     `json:"humidity"`
	WindKmh       float64 `json:"wind_kmh"`
}

// ForecastDay is a single day parsed from the ten-day forecast page.
// Every field is optional: extraction failures for one field leave it nil
// without invalidating the rest of the day.
type ForecastDay struct {
	Day           *string  `json:"day"`
	Date          *string  `json:"date"`
	Condition     *string  `json:"condition"`
	ConditionCode *int     `json:"condition_code"`
	TempHighC     *float64 `json:"temp_high_c"`
	TempLowC      *float64 `json:"temp_low_c"`
	Precip        *int     `json:"precip"`
	WindKmh       *float64 `json:"wind_kmh"`
}

// Snapshot is the combined current plus forecast record for one city on one
// day, or an error marker when acquisition failed. Error snapshots are never
// cached.
type Snapshot struct {
	City          string             `json:"city"`
	DateRetrieved string             `json:"date_retrieved,omitempty"`
	Current       *CurrentConditions `json:"current,omitempty"`
	Forecast      []ForecastDay      `json:"forecast,omitempty"`
	Error         string             `json:"error,omitempty"`
}

// Failed reports whether the snapshot is an error marker.
func (s Snapshot) Failed() bool {
	return s.Error != ""
}
