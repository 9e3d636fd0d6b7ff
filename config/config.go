// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration. API credentials default to
// placeholder strings when unset; clients still attempt live calls, which
// then fail and degrade to mock data.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   string `env:"PORT" envDefault:"8080"`

	// Amadeus (flights, airport suggestions)
	AmadeusClientID     string `env:"AMADEUS_CLIENT_ID" envDefault:"your_amadeus_client_id"`
	AmadeusClientSecret string `env:"AMADEUS_CLIENT_SECRET" envDefault:"your_amadeus_client_secret"`
	AmadeusBaseURL      string `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`

	// Booking.com via RapidAPI (hotels, destination lookup)
	BookingAPIKey  string `env:"BOOKING_API_KEY" envDefault:"your_booking_api_key"`
	BookingBaseURL string `env:"BOOKING_BASE_URL" envDefault:"https://booking-com.p.rapidapi.com"`

	// OpenCage (geocoding)
	OpenCageAPIKey  string `env:"OPENCAGE_API_KEY" envDefault:"your_opencage_api_key"`
	OpenCageBaseURL string `env:"OPENCAGE_BASE_URL" envDefault:"https://api.opencagedata.com"`

	// OpenWeatherMap (current weather)
	OpenWeatherAPIKey  string `env:"OPENWEATHER_API_KEY" envDefault:"your_openweather_api_key"`
	OpenWeatherBaseURL string `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org"`

	// Comma-separated extra CORS origins for the frontend
	FrontendURL string `env:"FRONTEND_URL" envDefault:""`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// AllowedOrigins returns the CORS origin list: local dev hosts plus any
// configured frontend URLs.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	for _, u := range strings.Split(c.FrontendURL, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			origins = append(origins, u)
		}
	}
	return origins
}
