// Package weather is a sample endpoint provider serving daily forecasts.
// Forecasts are generated on first request for a date and then kept, in
// memory or in PostgreSQL when the database is enabled.
package weather

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format of a forecast date.
const DateLayout = "2006-01-02"

// Forecast is the weather issued for one day.
type Forecast struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	TemperatureC int       `json:"temperatureC"`
	TemperatureF int       `json:"temperatureF"`
	Summary      string    `json:"summary"`
}

// Fahrenheit converts a Celsius temperature the way forecasts report it.
func Fahrenheit(c int) int {
	return 32 + int(float64(c)/0.5556)
}

// Generator issues new random forecasts.
type Generator struct {
	summaries []string
}

// NewGenerator returns a generator drawing summaries from summaries.
func NewGenerator(summaries []string) *Generator {
	return &Generator{summaries: summaries}
}

// Forecast issues a forecast for date with a temperature in [-20, 55).
func (g *Generator) Forecast(date time.Time) Forecast {
	c := rand.IntN(75) - 20

	var summary string
	if len(g.summaries) > 0 {
		summary = g.summaries[rand.IntN(len(g.summaries))]
	}

	return Forecast{
		ID:           uuid.New(),
		Date:         date.Format(DateLayout),
		TemperatureC: c,
		TemperatureF: Fahrenheit(c),
		Summary:      summary,
	}
}

// upcoming returns the count calendar days following now.
func upcoming(now time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := make([]time.Time, count)
	for i := range days {
		days[i] = today.AddDate(0, 0, i+1)
	}
	return days
}
