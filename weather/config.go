package weather

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultURL is the OpenWeatherMap 5 day / 3 hour forecast endpoint.
const DefaultURL = "https://api.openweathermap.org/data/2.5/forecast"

// Config configures the forecast client and the launch advisory rule.
type Config struct {
	APIKey        string        `env:"OPENWEATHER_API_KEY"`
	BaseURL       string        `env:"OPENWEATHER_URL" envDefault:"https://api.openweathermap.org/data/2.5/forecast"`
	MaxCloudCover float64       `env:"WEATHER_MAX_CLOUD_COVER" envDefault:"80"` // percent
	MaxWindSpeed  float64       `env:"WEATHER_MAX_WIND_SPEED" envDefault:"15"`  // m/s
	Timeout       time.Duration `env:"WEATHER_TIMEOUT" envDefault:"10s"`
}

// ConfigFromEnv reads the configuration from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration cannot be used to query forecasts.
func (c Config) Validate() error {
	switch {
	case c.APIKey == "":
		return errors.New("weather: missing OpenWeatherMap API key (OPENWEATHER_API_KEY)")
	case c.BaseURL == "":
		return errors.New("weather: missing forecast URL")
	case c.MaxCloudCover < 0 || c.MaxWindSpeed < 0:
		return errors.New("weather: launch thresholds must not be negative")
	}
	return nil
}
