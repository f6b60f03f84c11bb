package weather

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"
)

// Migrations holds the forecast schema in golang-migrate layout under "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS

const (
	insertForecast = `
		INSERT INTO forecasts (id, date, temperature_c, summary)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO NOTHING`

	selectForecasts = `
		SELECT id, date, temperature_c, summary
		FROM forecasts
		WHERE date BETWEEN $1 AND $2
		ORDER BY date`
)

type postgres struct {
	db  *sql.DB
	gen *Generator
	now func() time.Time
}

// NewPostgresRepository persists forecasts in the forecasts table so every
// process serves the same forecast for a date.
func NewPostgresRepository(db *sql.DB, gen *Generator) Repository {
	return &postgres{db: db, gen: gen, now: time.Now}
}

func (p *postgres) Next(ctx context.Context, count int) ([]Forecast, error) {
	days := upcoming(p.now(), count)
	if len(days) == 0 {
		return []Forecast{}, nil
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, day := range days {
		f := p.gen.Forecast(day)
		if _, err := tx.ExecContext(ctx, insertForecast, f.ID, day, f.TemperatureC, f.Summary); err != nil {
			return nil, fmt.Errorf("issue forecast %s: %w", f.Date, err)
		}
	}

	rows, err := tx.QueryContext(ctx, selectForecasts, days[0], days[len(days)-1])
	if err != nil {
		return nil, fmt.Errorf("query forecasts: %w", err)
	}
	defer rows.Close()

	result := make([]Forecast, 0, count)
	for rows.Next() {
		var (
			f    Forecast
			date time.Time
		)
		if err := rows.Scan(&f.ID, &date, &f.TemperatureC, &f.Summary); err != nil {
			return nil, fmt.Errorf("scan forecast: %w", err)
		}
		f.Date = date.Format(DateLayout)
		f.TemperatureF = Fahrenheit(f.TemperatureC)
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read forecasts: %w", err)
	}
	rows.Close()

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return result, nil
}
