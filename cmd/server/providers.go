package main

import (
	"github.com/JaimeStill/endpoint-providers/internal/health"
	"github.com/JaimeStill/endpoint-providers/internal/weather"
)

// providerMarkers selects the packages scanned for endpoint providers.
var providerMarkers = []any{
	health.Marker{},
	weather.Marker{},
}
