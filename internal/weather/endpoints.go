package weather

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/endpoint-providers/internal/api"
	"github.com/JaimeStill/endpoint-providers/internal/config"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints"
	"github.com/JaimeStill/endpoint-providers/pkg/handlers"
	"github.com/JaimeStill/endpoint-providers/pkg/routes"
)

// Marker identifies this package when scanning for providers.
type Marker struct{}

func init() {
	endpoints.Register(api.Endpoints, NewEndpoints)
}

// Endpoints serves the forecast routes.
type Endpoints struct {
	repo   Repository
	cfg    *config.WeatherConfig
	logger *slog.Logger
}

// NewEndpoints resolves the forecast repository from the runtime: PostgreSQL
// when a database is configured, process memory otherwise.
func NewEndpoints(rt *api.Runtime) (*Endpoints, error) {
	gen := NewGenerator(rt.Config.Weather.Summaries)

	var repo Repository
	if rt.Database != nil {
		repo = NewPostgresRepository(rt.Database.Connection(), gen)
	} else {
		repo = NewMemoryRepository(gen)
	}

	return New(repo, &rt.Config.Weather, rt.Logger), nil
}

// New creates the provider over an explicit repository.
func New(repo Repository, cfg *config.WeatherConfig, logger *slog.Logger) *Endpoints {
	return &Endpoints{
		repo:   repo,
		cfg:    cfg,
		logger: logger.With("provider", "weather"),
	}
}

func (e *Endpoints) AddEndpoints(app routes.System) error {
	app.RegisterGroup(routes.Group{
		Prefix:      "/weatherforecast",
		Tags:        []string{"Weather"},
		Description: "Daily weather forecasts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Name: "GetWeatherForecast", Handler: e.Forecast},
		},
	})
	return nil
}

// Forecast answers GET /weatherforecast?count=N with the next N days.
// A count that is missing, malformed, non-positive or above the configured
// maximum is rejected with an empty 400.
func (e *Endpoints) Forecast(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count <= 0 || count > e.cfg.MaxCount {
		handlers.RespondStatus(w, http.StatusBadRequest)
		return
	}

	forecasts, err := e.repo.Next(r.Context(), count)
	if err != nil {
		handlers.RespondError(w, e.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, forecasts)
}
