package api

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	signedIntPattern   = regexp.MustCompile(`-?\d+`)
	unsignedIntPattern = regexp.MustCompile(`\d+`)
	percentPattern     = regexp.MustCompile(`(\d+)%`)
)

// parseNum extracts the first signed integer substring as a float,
// falling back to def when none is found.
func parseNum(text string, def float64) float64 {
	if text == "" {
		return def
	}
	match := signedIntPattern.FindString(text)
	if match == "" {
		return def
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return def
	}
	return value
}

// parseTempC parses a temperature in Celsius. Values over 50, or any source
// text containing an "f", are read as Fahrenheit and converted. Rounded to
// two decimals.
func parseTempC(text string) float64 {
	t := parseNum(text, 20.0)
	if t > 50 || (text != "" && strings.Contains(strings.ToLower(text), "f")) {
		t = (t - 32) * 5 / 9
	}
	return math.Round(t*100) / 100
}

// parsePercent prefers an integer immediately followed by '%', then any
// integer, then 0.
func parsePercent(text string) int {
	if match := percentPattern.FindStringSubmatch(text); match != nil {
		value, _ := strconv.Atoi(match[1])
		return value
	}
	if match := unsignedIntPattern.FindString(text); match != "" {
		value, _ := strconv.Atoi(match)
		return value
	}
	return 0
}

// parseWindKmh parses a wind speed, converting mph readings to km/h.
func parseWindKmh(text string) float64 {
	speed := parseNum(text, 10.0)
	if text != "" && strings.Contains(strings.ToLower(text), "mph") {
		speed *= 1.60934
	}
	return speed
}

// conditionCode maps a condition phrase to a compact numeric code by
// case-insensitive substring match, first match wins.
func conditionCode(desc string) int {
	d := strings.ToLower(desc)
	switch {
	case strings.Contains(d, "clear") || strings.Contains(d, "sunny"):
		return 0
	case strings.Contains(d, "partly") || strings.Contains(d, "mostly sunny"):
		return 1
	case strings.Contains(d, "cloudy") || strings.Contains(d, "overcast"):
		return 3
	case strings.Contains(d, "rain"):
		return 63
	case strings.Contains(d, "snow"):
		return 73
	case strings.Contains(d, "storm") || strings.Contains(d, "thunder"):
		return 95
	default:
		return 2
	}
}
