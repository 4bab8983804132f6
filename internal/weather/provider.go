package weather

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Fixed user-facing messages shared by every provider.
const (
	NoResultsMessage = "No weather data found for this location"
	ErrorMessage     = "Something went wrong... ಠ_ಠ"
)

// Params are the user-supplied command arguments, in the order they were typed.
type Params []string

// Lines is the output of a provider. Each entry is sent as one chat line.
type Lines []string

// Provider abstracts a weather data source for the chat command.
// Implementations hold only read-only configuration and must be safe for
// concurrent use.
type Provider interface {
	Name() string

	// ValidateParams reports whether params can be turned into a request.
	ValidateParams(params Params) bool

	// BuildRequestTarget builds the API URL for params. It never performs I/O.
	BuildRequestTarget(params Params) RequestTarget

	// FormatSuccess renders a decoded payload. Payloads without a location
	// name are delegated to FormatEmptyResult.
	FormatSuccess(resp *Response) Lines

	FormatEmptyResult(resp *Response) Lines
	FormatError(err error) Lines
	HelpLines() Lines
}

// Fetcher performs the HTTP call for a built request target.
type Fetcher interface {
	Fetch(ctx context.Context, target RequestTarget) ([]byte, error)
}

// ReportStore is the contract the in-memory report log must satisfy.
type ReportStore interface {
	SaveReport(report Report)
	GetLatest(location string) (Report, error)
	GetRange(location string, from, to time.Time) ([]Report, error)
}

type queryParam struct {
	key   string
	value string
}

// RequestTarget is an immutable API URL. Query parameters keep the order in
// which they were added.
type RequestTarget struct {
	endpoint string
	params   []queryParam
}

// NewRequestTarget returns a target for endpoint with the given key/value
// pairs. pairs must have an even length; a trailing odd key is ignored.
func NewRequestTarget(endpoint string, pairs ...string) RequestTarget {
	t := RequestTarget{endpoint: endpoint}
	for i := 0; i+1 < len(pairs); i += 2 {
		t.params = append(t.params, queryParam{key: pairs[i], value: pairs[i+1]})
	}
	return t
}

// Endpoint returns the URL without its query string.
func (t RequestTarget) Endpoint() string {
	return t.endpoint
}

// Param returns the value of the named query parameter and whether it is set.
func (t RequestTarget) Param(key string) (string, bool) {
	for _, p := range t.params {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// String renders the full URL with form-encoded query values.
func (t RequestTarget) String() string {
	if len(t.params) == 0 {
		return t.endpoint
	}

	var b strings.Builder
	b.WriteString(t.endpoint)
	b.WriteByte('?')
	for i, p := range t.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
