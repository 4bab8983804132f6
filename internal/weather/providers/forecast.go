package providers

import (
	"fmt"
	"strconv"

	"github.com/i474232898/weather-bot/internal/weather"
)

// forecastDays is today plus tomorrow.
const forecastDays = 2

// The extended suffix is picked before interpolation, so the flag alone decides
// whether it is rendered.
const (
	forecastBaseFormat     = "%s, %s, %s | %s | Temp: %dC %dF | Feels like: %dC %dF | Humidity: %d%% | Wind: %s @ %d kph %d mph"
	forecastExtendedFormat = " | Clouds: %d%% | Today: %s %dC-%dC %dF-%dF | Tomorrow: %s %dC-%dC %dF-%dF"
)

// ForecastConfig configures the forecast provider.
type ForecastConfig struct {
	APIKey   string `validate:"required"`
	Extended bool
	Endpoint string `validate:"omitempty,url"`
}

// ForecastProvider implements weather.Provider for the WeatherAPI.com
// forecast endpoint. In extended mode the line also carries cloud cover and
// the today/tomorrow outlook.
type ForecastProvider struct {
	base
	extended bool
}

// NewForecastProvider fails with a *weather.ConfigError wrapping
// weather.ErrMissingAPIKey when cfg has no API key.
func NewForecastProvider(cfg ForecastConfig) (*ForecastProvider, error) {
	if err := validateConfig(string(KindForecast), cfg); err != nil {
		return nil, err
	}

	return &ForecastProvider{
		base: base{
			name:     string(KindForecast),
			endpoint: endpointOr(cfg.Endpoint, forecastEndpoint),
			apiKey:   cfg.APIKey,
			helpText: "Instructs the bot to query WeatherAPI.com for the weather forecast for the specified location",
		},
		extended: cfg.Extended,
	}, nil
}

// Extended reports whether the provider renders the extended segment.
func (p *ForecastProvider) Extended() bool {
	return p.extended
}

func (p *ForecastProvider) BuildRequestTarget(params weather.Params) weather.RequestTarget {
	return p.target(params, "days", strconv.Itoa(forecastDays))
}

func (p *ForecastProvider) FormatSuccess(resp *weather.Response) weather.Lines {
	if !weather.HasLocation(resp) {
		return p.FormatEmptyResult(resp)
	}

	format, args := p.template(resp)
	return weather.Lines{fmt.Sprintf(format, args...)}
}

// template returns the format string and its arguments for resp.
func (p *ForecastProvider) template(resp *weather.Response) (string, []any) {
	name, region, country := weather.Place(resp)
	cur := weather.CurrentOf(resp)

	format := forecastBaseFormat
	args := []any{
		name,
		region,
		country,
		weather.ConditionText(cur.Condition),
		weather.Trunc(cur.TempC),
		weather.Trunc(cur.TempF),
		weather.Trunc(cur.FeelsLikeC),
		weather.Trunc(cur.FeelsLikeF),
		weather.Trunc(cur.Humidity),
		cur.WindDir,
		weather.Trunc(cur.WindKph),
		weather.Trunc(cur.WindMph),
	}

	if !p.extended {
		return format, args
	}

	format += forecastExtendedFormat
	args = append(args, weather.Trunc(cur.Cloud))
	args = append(args, dayArgs(weather.DayOf(resp, 0))...)
	args = append(args, dayArgs(weather.DayOf(resp, 1))...)
	return format, args
}

func dayArgs(d weather.DayBlock) []any {
	return []any{
		weather.ConditionText(d.Condition),
		weather.Trunc(d.MinTempC),
		weather.Trunc(d.MaxTempC),
		weather.Trunc(d.MinTempF),
		weather.Trunc(d.MaxTempF),
	}
}
