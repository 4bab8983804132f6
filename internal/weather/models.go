package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Response is the decoded weatherapi.com payload. Every block is optional:
// the API answers unknown locations with an error object and no location.
type Response struct {
	Location *ResponseLocation `json:"location"`
	Current  *CurrentBlock     `json:"current"`
	Forecast *ForecastBlock    `json:"forecast"`
}

type ResponseLocation struct {
	// Name is a pointer so that a missing field and an explicit null can
	// both be told apart from an empty string.
	Name    *string `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
}

type ConditionBlock struct {
	Text string `json:"text"`
}

// CurrentBlock holds the present-moment readings. Numbers are float64 because
// the API mixes integer and fractional encodings across fields.
type CurrentBlock struct {
	Condition  *ConditionBlock `json:"condition"`
	TempC      float64         `json:"temp_c"`
	TempF      float64         `json:"temp_f"`
	FeelsLikeC float64         `json:"feelslike_c"`
	FeelsLikeF float64         `json:"feelslike_f"`
	Humidity   float64         `json:"humidity"`
	WindDir    string          `json:"wind_dir"`
	WindKph    float64         `json:"wind_kph"`
	WindMph    float64         `json:"wind_mph"`
	Cloud      float64         `json:"cloud"`
}

type ForecastBlock struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	Date string    `json:"date"`
	Day  *DayBlock `json:"day"`
}

type DayBlock struct {
	Condition *ConditionBlock `json:"condition"`
	MinTempC  float64         `json:"mintemp_c"`
	MaxTempC  float64         `json:"maxtemp_c"`
	MinTempF  float64         `json:"mintemp_f"`
	MaxTempF  float64         `json:"maxtemp_f"`
}

// DecodeResponse decodes a raw API body. Only a body that is not JSON at all
// is an error. Values of an unexpected type are skipped and the rest of the
// payload is kept, so a non-object body decodes to a Response without a
// location.
func DecodeResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("decode weather response: %w", err)
		}
	}
	return &resp, nil
}

// Report is the result of one scheduled weather lookup.
type Report struct {
	ID        string    `json:"id"`
	Location  string    `json:"location"`
	Provider  string    `json:"provider"`
	Lines     Lines     `json:"lines"`
	CreatedAt time.Time `json:"createdAt"` // always UTC
}
