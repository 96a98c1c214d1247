package api

import (
	"math"
	"testing"
)

func TestParseTempC(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "fahrenheit with unit", text: "95F", want: 35.0},
		{name: "celsius plain", text: "20", want: 20.0},
		{name: "fahrenheit by magnitude", text: "60", want: 15.56},
		{name: "degree suffix", text: "18°", want: 18.0},
		{name: "negative", text: "-5°", want: -5.0},
		{name: "no digits falls back", text: "Unknown°", want: 20.0},
		{name: "empty falls back", text: "", want: 20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTempC(tt.text)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("parseTempC(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "percent sign", text: "30%", want: 30},
		{name: "no digits", text: "rain", want: 0},
		{name: "bare integer", text: "45", want: 45},
		{name: "sign ignored in fallback", text: "-5", want: 5},
		{name: "percent preferred over other ints", text: "Rain 3 of 70%", want: 70},
		{name: "empty", text: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parsePercent(tt.text); got != tt.want {
				t.Errorf("parsePercent(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseWindKmh(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "mph converted", text: "10 mph", want: 16.0934},
		{name: "kmh passthrough", text: "10 km/h", want: 10.0},
		{name: "no digits falls back", text: "calm", want: 10.0},
		{name: "bare number", text: "25", want: 25.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseWindKmh(tt.text)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("parseWindKmh(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestConditionCode(t *testing.T) {
	tests := []struct {
		desc string
		want int
	}{
		{desc: "Sunny", want: 0},
		{desc: "Clear", want: 0},
		{desc: "Mostly Sunny", want: 0},
		{desc: "Partly Cloudy", want: 1},
		{desc: "Cloudy", want: 3},
		{desc: "Overcast", want: 3},
		{desc: "Light Rain", want: 63},
		{desc: "Snow Showers", want: 73},
		{desc: "Heavy Thunderstorm", want: 95},
		{desc: "Fog", want: 2},
		{desc: "", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := conditionCode(tt.desc); got != tt.want {
				t.Errorf("conditionCode(%q) = %d, want %d", tt.desc, got, tt.want)
			}
		})
	}
}

func TestParseNum(t *testing.T) {
	tests := []struct {
		name string
		text string
		def  float64
		want float64
	}{
		{name: "first integer wins", text: "12 to 15", def: 0, want: 12},
		{name: "negative preserved", text: "-3°", def: 0, want: -3},
		{name: "default on empty", text: "", def: 7, want: 7},
		{name: "default on no digits", text: "n/a", def: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseNum(tt.text, tt.def); got != tt.want {
				t.Errorf("parseNum(%q, %v) = %v, want %v", tt.text, tt.def, got, tt.want)
			}
		})
	}
}
