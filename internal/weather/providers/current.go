package providers

import (
	"fmt"

	"github.com/i474232898/weather-bot/internal/weather"
)

const currentFormat = "%s, %s, %s | %s | Temp: %dC %dF | Humidity: %d%% | Wind: %s @ %d mph %d kph | Clouds: %d"

// CurrentConfig configures the current-conditions provider. The API key is
// optional; the free tier accepts anonymous queries.
type CurrentConfig struct {
	APIKey   string
	Endpoint string `validate:"omitempty,url"`
}

// CurrentProvider implements weather.Provider for WeatherAPI.com current conditions.
type CurrentProvider struct {
	base
}

func NewCurrentProvider(cfg CurrentConfig) (*CurrentProvider, error) {
	if err := validateConfig(string(KindCurrent), cfg); err != nil {
		return nil, err
	}

	return &CurrentProvider{
		base: base{
			name:     string(KindCurrent),
			endpoint: endpointOr(cfg.Endpoint, currentEndpoint),
			apiKey:   cfg.APIKey,
			helpText: "Instructs the bot to query WeatherAPI.com for current weather info for the specified location",
		},
	}, nil
}

func (p *CurrentProvider) BuildRequestTarget(params weather.Params) weather.RequestTarget {
	return p.target(params)
}

func (p *CurrentProvider) FormatSuccess(resp *weather.Response) weather.Lines {
	if !weather.HasLocation(resp) {
		return p.FormatEmptyResult(resp)
	}

	name, region, country := weather.Place(resp)
	cur := weather.CurrentOf(resp)

	return weather.Lines{
		fmt.Sprintf(
			currentFormat,
			name,
			region,
			country,
			weather.ConditionText(cur.Condition),
			weather.Trunc(cur.TempC),
			weather.Trunc(cur.TempF),
			weather.Trunc(cur.Humidity),
			cur.WindDir,
			weather.Trunc(cur.WindMph),
			weather.Trunc(cur.WindKph),
			weather.Trunc(cur.Cloud),
		),
	}
}
