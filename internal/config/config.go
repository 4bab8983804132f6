package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/i474232898/weather-bot/internal/weather/providers"
)

type AppConfig struct {
	// Provider selects the weather provider variant.
	Provider string `envconfig:"WEATHER_PROVIDER" default:"current" validate:"oneof=current forecast"`
	APIKey   string `envconfig:"WEATHER_API_KEY"`
	Extended bool   `envconfig:"WEATHER_EXTENDED" default:"false"`
	Endpoint string `envconfig:"WEATHER_ENDPOINT" validate:"omitempty,url"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`

	// Locations reported on a schedule, comma separated.
	ReportLocations []string      `envconfig:"REPORT_LOCATIONS"`
	ReportInterval  time.Duration `envconfig:"REPORT_INTERVAL" default:"15m" validate:"gte=1m"` // scheduled in whole minutes

	// In-memory report log retention.
	StoreMaxHistory int           `envconfig:"STORE_MAX_HISTORY" default:"96" validate:"gte=0"` // roughly 24h at 15-minute intervals
	StoreMaxAge     time.Duration `envconfig:"STORE_MAX_AGE" default:"24h" validate:"gte=0"`

	Port string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
}

var validate = validator.New()

// Load reads configuration from the environment (and an optional .env file)
// with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	return fromEnv()
}

func fromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg.ReportLocations = compact(cfg.ReportLocations)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ProviderKind returns the configured provider variant.
func (c *AppConfig) ProviderKind() providers.Kind {
	return providers.Kind(c.Provider)
}

// ProviderConfig returns the option set handed to the provider registry.
func (c *AppConfig) ProviderConfig() providers.Config {
	return providers.Config{
		APIKey:   c.APIKey,
		Extended: c.Extended,
		Endpoint: c.Endpoint,
	}
}

func compact(items []string) []string {
	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
