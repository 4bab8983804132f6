package providers

import (
	"github.com/i474232898/weather-bot/internal/weather"
)

// Kind identifies a provider variant.
type Kind string

const (
	KindCurrent  Kind = "current"
	KindForecast Kind = "forecast"
)

// Config is the provider-agnostic option set read from the environment.
// Options a variant does not use are ignored.
type Config struct {
	APIKey   string
	Extended bool
	Endpoint string
}

// Kinds lists the registered provider kinds.
func Kinds() []Kind {
	return []Kind{KindCurrent, KindForecast}
}

// New builds the provider registered for kind.
func New(kind Kind, cfg Config) (weather.Provider, error) {
	var (
		p   weather.Provider
		err error
	)

	switch kind {
	case KindCurrent:
		p, err = NewCurrentProvider(CurrentConfig{
			APIKey:   cfg.APIKey,
			Endpoint: cfg.Endpoint,
		})
	case KindForecast:
		p, err = NewForecastProvider(ForecastConfig{
			APIKey:   cfg.APIKey,
			Extended: cfg.Extended,
			Endpoint: cfg.Endpoint,
		})
	default:
		err = &weather.ConfigError{Provider: string(kind), Err: weather.ErrUnknownProvider}
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
