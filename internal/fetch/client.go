package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-bot/internal/weather"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

var (
	ErrRateLimited      = errors.New("rate limited")
	ErrServerError      = errors.New("server error")
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrCircuitOpen      = errors.New("circuit breaker open")
	ErrNoHTTPClient     = errors.New("http client not configured")
)

// Client performs weather API requests behind a circuit breaker. It issues a
// single attempt per call and leaves retries to the caller.
type Client struct {
	http    *http.Client
	circuit *gobreaker.CircuitBreaker
}

// New creates a Client. name labels the circuit breaker.
func New(client *http.Client, name string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		http:    client,
		circuit: cb,
	}
}

// Fetch GETs target and returns the response body.
//
// A 400 response is returned as a body rather than an error: WeatherAPI.com
// answers unknown locations with 400 and a JSON error object, which decodes
// to a response without a location.
func (c *Client) Fetch(ctx context.Context, target weather.RequestTarget) ([]byte, error) {
	if c.http == nil {
		return nil, ErrNoHTTPClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", target.Endpoint(), redact(err))
	}
	req.Header.Set("Accept", "application/json")

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.http.Do(req)
		if execErr != nil {
			return nil, redact(execErr)
		}
		defer resp.Body.Close()

		// Handle rate limiting and server errors explicitly.
		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return nil, ErrRateLimited
		case resp.StatusCode >= 500:
			return nil, fmt.Errorf("%w: %d", ErrServerError, resp.StatusCode)
		case resp.StatusCode == http.StatusBadRequest:
			// unknown location, body is read below
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if readErr != nil {
			return nil, fmt.Errorf("read body: %w", redact(readErr))
		}
		return body, nil
	})
	if err != nil {
		// If circuit is open, report it as such.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return body, nil
}

// State returns the current circuit breaker state.
func (c *Client) State() gobreaker.State {
	return c.circuit.State()
}

// redact strips the request URL, which carries the API key, from transport errors.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s request: %w", uerr.Op, uerr.Err)
	}
	return err
}
