package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvWeatherMaxCount  = "WEATHER_MAX_COUNT"
	EnvWeatherSummaries = "WEATHER_SUMMARIES"
)

// DefaultSummaries are the forecast descriptions used when none are configured.
var DefaultSummaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// WeatherConfig configures the forecast endpoints.
type WeatherConfig struct {
	// MaxCount bounds the count query parameter.
	MaxCount  int      `toml:"max_count"`
	Summaries []string `toml:"summaries"`
}

func (c *WeatherConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *WeatherConfig) Merge(overlay *WeatherConfig) {
	if overlay.MaxCount != 0 {
		c.MaxCount = overlay.MaxCount
	}
	if overlay.Summaries != nil {
		c.Summaries = overlay.Summaries
	}
}

func (c *WeatherConfig) loadDefaults() {
	if c.MaxCount == 0 {
		c.MaxCount = 100
	}
	if len(c.Summaries) == 0 {
		c.Summaries = DefaultSummaries
	}
}

func (c *WeatherConfig) loadEnv() {
	if v := os.Getenv(EnvWeatherMaxCount); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxCount = n
		}
	}
	if v := os.Getenv(EnvWeatherSummaries); v != "" {
		var summaries []string
		for s := range strings.SplitSeq(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				summaries = append(summaries, s)
			}
		}
		if len(summaries) > 0 {
			c.Summaries = summaries
		}
	}
}

func (c *WeatherConfig) validate() error {
	if c.MaxCount < 1 {
		return fmt.Errorf("invalid max_count: %d", c.MaxCount)
	}
	return nil
}
