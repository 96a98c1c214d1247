package api

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"travel-weather-api/internal/domain/model"
	"travel-weather-api/pkg/log"
)

var (
	humidityPattern = regexp.MustCompile(`(?i)humidity\s*:?\s*(\d+)%`)
	windPattern     = regexp.MustCompile(`(?i)wind\s*:?\s*(\d+)\s*(mph|km)\w*`)
)

// extractCurrent parses the current-conditions block out of the ten-day page.
// Missing elements fall back to defaults rather than failing the pass.
func extractCurrent(doc *goquery.Document) *model.CurrentConditions {
	tempEl := doc.Find(`span[data-testid="TemperatureValue"]`).First()
	if tempEl.Length() == 0 {
		tempEl = doc.Find(`span[class*="temp"]`).First()
	}
	condEl := doc.Find(`div[data-testid="wxPhrase"]`).First()
	if condEl.Length() == 0 {
		condEl = doc.Find(`div[class*="phrase"]`).First()
	}
	pageText := doc.Text()

	humidity := 50
	if match := humidityPattern.FindStringSubmatch(pageText); match != nil {
		humidity = parsePercent(match[1] + "%")
	}

	windKmh := 10.0
	if match := windPattern.FindString(pageText); match != "" {
		windKmh = parseWindKmh(match)
	}

	cond := "Unknown"
	if condEl.Length() > 0 {
		cond = strings.TrimSpace(condEl.Text())
	}

	tempText := "Unknown°"
	if tempEl.Length() > 0 {
		tempText = tempEl.Text()
	}
	tempC := parseTempC(tempText)

	return &model.CurrentConditions{
		TemperatureC:  tempC,
		TemperatureF:  tempC*9/5 + 32,
		Condition:     cond,
		ConditionCode: conditionCode(cond),
		Humidity:      humidity,
		WindKmh:       windKmh,
	}
}

// extractForecast folds over the repeated day cards, accumulating the days
// that parse and dropping the ones that do not. An empty page yields an empty
// sequence, not an error.
func extractForecast(doc *goquery.Document) []model.ForecastDay {
	cards := doc.Find(`div[data-testid="DetailsSummary"]`)
	if cards.Length() == 0 {
		log.Warn("no forecast cards found")
		return []model.ForecastDay{}
	}

	forecast := make([]model.ForecastDay, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		if day, ok := parseForecastCard(card); ok {
			forecast = append(forecast, day)
		}
	})

	return forecast
}

// parseForecastCard extracts one day. Each field is individually optional; a
// card that panics mid-parse is skipped entirely so the remaining cards
// survive.
func parseForecastCard(card *goquery.Selection) (day model.ForecastDay, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("skipping one forecast card: %v", r)
			ok = false
		}
	}()

	dayEl := card.Find(`h2[data-testid="daypartName"]`).First()
	condEl := card.Find(`span[class*="wxPhrase"]`).First()
	temps := card.Find(`span[data-testid="TemperatureValue"]`)
	precipEl := card.Find(`span[data-testid="PercentageValue"]`).First()
	windEl := card.Find(`div[data-testid="wind"]`).First()

	if dayEl.Length() > 0 {
		name := strings.TrimSpace(dayEl.Text())
		day.Day = &name
		day.Date = &name
	}
	if condEl.Length() > 0 {
		cond := strings.TrimSpace(condEl.Text())
		code := conditionCode(cond)
		day.Condition = &cond
		day.ConditionCode = &code
	}
	if temps.Length() > 0 {
		high := parseTempC(strings.TrimSpace(temps.Eq(0).Text()))
		day.TempHighC = &high
	}
	if temps.Length() > 1 {
		low := parseTempC(strings.TrimSpace(temps.Eq(1).Text()))
		day.TempLowC = &low
	}
	if precipEl.Length() > 0 {
		precip := parsePercent(strings.TrimSpace(precipEl.Text()))
		day.Precip = &precip
	}
	if windEl.Length() > 0 {
		wind := parseWindKmh(strings.TrimSpace(windEl.Text()))
		day.WindKmh = &wind
	}

	return day, true
}
