package weather

import (
	"context"
	"sync"
	"time"
)

// Repository hands out forecasts for upcoming days. A date's forecast never
// changes once issued.
type Repository interface {
	Next(ctx context.Context, count int) ([]Forecast, error)
}

type memory struct {
	gen       *Generator
	now       func() time.Time
	mu        sync.Mutex
	forecasts map[string]Forecast
}

// NewMemoryRepository keeps issued forecasts for the life of the process.
func NewMemoryRepository(gen *Generator) Repository {
	return &memory{
		gen:       gen,
		now:       time.Now,
		forecasts: make(map[string]Forecast),
	}
}

func (m *memory) Next(ctx context.Context, count int) ([]Forecast, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]Forecast, 0, max(count, 0))
	for _, day := range upcoming(m.now(), count) {
		key := day.Format(DateLayout)
		f, ok := m.forecasts[key]
		if !ok {
			f = m.gen.Forecast(day)
			m.forecasts[key] = f
		}
		result = append(result, f)
	}
	return result, nil
}
