package providers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-bot/internal/weather"
)

const (
	currentEndpoint  = "https://api.weatherapi.com/v1/current.json"
	forecastEndpoint = "https://api.weatherapi.com/v1/forecast.json"
)

var validate = validator.New()

var usageLines = weather.Lines{
	"Usage: weather [place] [country]",
	"[place] - address, town, city, zip code, etc. Can be multiple words",
}

// base holds what every weatherapi.com provider shares: the endpoint, the key
// and the fixed messages.
type base struct {
	name     string
	endpoint string
	apiKey   string
	helpText string
}

func (b base) Name() string {
	return b.name
}

func (b base) ValidateParams(params weather.Params) bool {
	return len(params) > 0
}

// target builds the request URL with q and key first, followed by extras.
func (b base) target(params weather.Params, extras ...string) weather.RequestTarget {
	pairs := append([]string{"q", weather.JoinParams(params), "key", b.apiKey}, extras...)
	return weather.NewRequestTarget(b.endpoint, pairs...)
}

func (b base) FormatEmptyResult(*weather.Response) weather.Lines {
	return weather.Lines{weather.NoResultsMessage}
}

func (b base) FormatError(error) weather.Lines {
	return weather.Lines{weather.ErrorMessage}
}

func (b base) HelpLines() weather.Lines {
	lines := make(weather.Lines, 0, len(usageLines)+1)
	lines = append(lines, usageLines...)
	return append(lines, b.helpText)
}

func endpointOr(endpoint, def string) string {
	if endpoint == "" {
		return def
	}
	return endpoint
}

// validateConfig runs struct validation on a provider config and converts the
// first failure into a weather.ConfigError.
func validateConfig(provider string, cfg any) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &weather.ConfigError{Provider: provider, Err: err}
	}

	fe := verrs[0]
	cause := fmt.Errorf("failed %q check", fe.Tag())
	if fe.Field() == "APIKey" && fe.Tag() == "required" {
		cause = weather.ErrMissingAPIKey
	}
	return &weather.ConfigError{Provider: provider, Field: fe.Field(), Err: cause}
}
