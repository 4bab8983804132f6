package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-bot/internal/weather"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchReturnsBody(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"location":{"name":"London"}}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), "test")
	body, err := c.Fetch(context.Background(), weather.NewRequestTarget(srv.URL+"/v1/current.json", "q", "London", "key", "k"))

	require.NoError(t, err)
	assert.JSONEq(t, `{"location":{"name":"London"}}`, string(body))
	assert.Equal(t, "q=London&key=k", gotQuery)
}

func TestFetchPassesBadRequestBodyThrough(t *testing.T) {
	srv := newServer(t, http.StatusBadRequest, `{"error":{"code":1006,"message":"No matching location found."}}`)

	c := New(srv.Client(), "test")
	body, err := c.Fetch(context.Background(), weather.NewRequestTarget(srv.URL, "q", "Nowhere"))

	require.NoError(t, err)
	assert.Contains(t, string(body), "1006")
}

func TestFetchClassifiesStatus(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrServerError},
		{http.StatusBadGateway, ErrServerError},
		{http.StatusUnauthorized, ErrUnexpectedStatus},
		{http.StatusForbidden, ErrUnexpectedStatus},
	}

	for _, tc := range cases {
		srv := newServer(t, tc.status, `{}`)
		c := New(srv.Client(), "test")

		_, err := c.Fetch(context.Background(), weather.NewRequestTarget(srv.URL, "q", "London"))
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
	}
}

func TestFetchRedactsURL(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{}`)
	srv.Close()

	c := New(&http.Client{Timeout: time.Second}, "test")
	_, err := c.Fetch(context.Background(), weather.NewRequestTarget(srv.URL, "q", "London", "key", "supersecret"))

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "supersecret")
}

func TestFetchHonoursContext(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(srv.Client(), "test")
	_, err := c.Fetch(ctx, weather.NewRequestTarget(srv.URL, "q", "London"))

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetchOpensCircuit(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `{}`)
	c := New(srv.Client(), "test")
	target := weather.NewRequestTarget(srv.URL, "q", "London")

	// the default breaker trips after more than five consecutive failures
	for i := 0; i < 6; i++ {
		_, err := c.Fetch(context.Background(), target)
		require.ErrorIs(t, err, ErrServerError)
	}

	assert.Equal(t, gobreaker.StateOpen, c.State())
	_, err := c.Fetch(context.Background(), target)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestFetchWithoutHTTPClient(t *testing.T) {
	c := New(nil, "test")
	_, err := c.Fetch(context.Background(), weather.NewRequestTarget("http://127.0.0.1", "q", "x"))
	assert.ErrorIs(t, err, ErrNoHTTPClient)
}
