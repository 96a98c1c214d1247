package api

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func buildForecastCard(day string, withCondition bool) string {
	var b strings.Builder
	b.WriteString(`<div data-testid="DetailsSummary">`)
	b.WriteString(fmt.Sprintf(`<h2 data-testid="daypartName">%s</h2>`, day))
	if withCondition {
		b.WriteString(`<span class="DetailsSummary--wxPhrase--nhYpy">Sunny</span>`)
	}
	b.WriteString(`<span data-testid="TemperatureValue">75°</span>`)
	b.WriteString(`<span data-testid="TemperatureValue">60°</span>`)
	b.WriteString(`<span data-testid="PercentageValue">10%</span>`)
	b.WriteString(`<div data-testid="wind">Wind 8 mph</div>`)
	b.WriteString(`</div>`)
	return b.String()
}

func buildTenDayPage(cards ...string) *goquery.Document {
	html := `<html><body>` +
		`<span data-testid="TemperatureValue">72°</span>` +
		`<div data-testid="wxPhrase">Partly Cloudy</div>` +
		`<div>Humidity: 65%</div>` +
		`<div>Wind: 12 mph</div>` +
		strings.Join(cards, "") +
		`</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		panic(err)
	}
	return doc
}

func TestExtractCurrent(t *testing.T) {
	doc := buildTenDayPage()

	current := extractCurrent(doc)

	// 72 reads as Fahrenheit
	if math.Abs(current.TemperatureC-22.22) > 0.01 {
		t.Errorf("TemperatureC = %v, want 22.22", current.TemperatureC)
	}
	if current.Condition != "Partly Cloudy" {
		t.Errorf("Condition = %q, want %q", current.Condition, "Partly Cloudy")
	}
	if current.ConditionCode != 1 {
		t.Errorf("ConditionCode = %d, want 1", current.ConditionCode)
	}
	if current.Humidity != 65 {
		t.Errorf("Humidity = %d, want 65", current.Humidity)
	}
	if math.Abs(current.WindKmh-12*1.60934) > 0.01 {
		t.Errorf("WindKmh = %v, want %v", current.WindKmh, 12*1.60934)
	}
}

func TestExtractCurrentDefaults(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body></body></html>`))
	if err != nil {
		t.Fatal(err)
	}

	current := extractCurrent(doc)

	if current.Condition != "Unknown" {
		t.Errorf("Condition = %q, want Unknown", current.Condition)
	}
	if current.TemperatureC != 20.0 {
		t.Errorf("TemperatureC = %v, want 20.0", current.TemperatureC)
	}
	if current.Humidity != 50 {
		t.Errorf("Humidity = %d, want 50", current.Humidity)
	}
	if current.WindKmh != 10.0 {
		t.Errorf("WindKmh = %v, want 10.0", current.WindKmh)
	}
}

func TestExtractCurrentTempClassFallback(t *testing.T) {
	html := `<html><body>` +
		`<span class="CurrentConditions--tempValue--abc123">64°</span>` +
		`<div data-testid="wxPhrase">Sunny</div>` +
		`</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	current := extractCurrent(doc)

	// 64 reads as Fahrenheit
	if math.Abs(current.TemperatureC-17.78) > 0.01 {
		t.Errorf("TemperatureC = %v, want 17.78", current.TemperatureC)
	}
	if current.Condition != "Sunny" {
		t.Errorf("Condition = %q, want Sunny", current.Condition)
	}
}

func TestExtractForecast(t *testing.T) {
	cards := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		// card 4 has no condition phrase
		cards = append(cards, buildForecastCard(fmt.Sprintf("Day %d", i), i != 4))
	}
	doc := buildTenDayPage(cards...)

	forecast := extractForecast(doc)

	if len(forecast) != 10 {
		t.Fatalf("len(forecast) = %d, want 10", len(forecast))
	}

	for i, day := range forecast {
		if day.Day == nil || *day.Day != fmt.Sprintf("Day %d", i) {
			t.Errorf("day %d: wrong or missing day name", i)
		}
		if day.TempHighC == nil || math.Abs(*day.TempHighC-23.89) > 0.01 {
			t.Errorf("day %d: TempHighC = %v, want 23.89", i, day.TempHighC)
		}
		if day.TempLowC == nil || math.Abs(*day.TempLowC-15.56) > 0.01 {
			t.Errorf("day %d: TempLowC = %v, want 15.56", i, day.TempLowC)
		}
		if day.Precip == nil || *day.Precip != 10 {
			t.Errorf("day %d: Precip = %v, want 10", i, day.Precip)
		}
		if day.WindKmh == nil || math.Abs(*day.WindKmh-8*1.60934) > 0.01 {
			t.Errorf("day %d: WindKmh = %v, want %v", i, day.WindKmh, 8*1.60934)
		}

		if i == 4 {
			if day.Condition != nil || day.ConditionCode != nil {
				t.Errorf("day 4: expected nil condition fields, got %v / %v", day.Condition, day.ConditionCode)
			}
		} else {
			if day.Condition == nil || *day.Condition != "Sunny" {
				t.Errorf("day %d: Condition = %v, want Sunny", i, day.Condition)
			}
			if day.ConditionCode == nil || *day.ConditionCode != 0 {
				t.Errorf("day %d: ConditionCode = %v, want 0", i, day.ConditionCode)
			}
		}
	}
}

func TestExtractForecastEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body></body></html>`))
	if err != nil {
		t.Fatal(err)
	}

	forecast := extractForecast(doc)
	if len(forecast) != 0 {
		t.Errorf("len(forecast) = %d, want 0", len(forecast))
	}
}
