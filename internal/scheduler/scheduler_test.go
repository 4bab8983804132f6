package scheduler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-bot/internal/fetch"
	"github.com/i474232898/weather-bot/internal/store"
	"github.com/i474232898/weather-bot/internal/weather"
	"github.com/i474232898/weather-bot/internal/weather/providers"
)

func newService(t *testing.T) *weather.Service {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Nowhere" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":1006}}`))
			return
		}
		_, _ = w.Write([]byte(`{"location":{"name":"` + r.URL.Query().Get("q") + `","region":"R","country":"C"}}`))
	}))
	t.Cleanup(srv.Close)

	p, err := providers.New(providers.KindCurrent, providers.Config{Endpoint: srv.URL + "/v1/current.json"})
	require.NoError(t, err)
	return weather.NewService(p, fetch.New(srv.Client(), "test"))
}

func TestRunOnceSavesReports(t *testing.T) {
	reports := store.NewMemoryStore(10, 0)
	s := New([]string{"London UK", " ", "Nowhere"}, time.Minute, newService(t), reports)

	s.RunOnce(context.Background())

	got, err := reports.GetLatest("London UK")
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "current", got.Provider)
	require.Len(t, got.Lines, 1)
	assert.Contains(t, got.Lines[0], "London UK, R, C")

	missing, err := reports.GetLatest("Nowhere")
	require.NoError(t, err)
	assert.Equal(t, weather.Lines{weather.NoResultsMessage}, missing.Lines)
}

func TestStartWithoutLocations(t *testing.T) {
	s := New(nil, time.Minute, newService(t), store.NewMemoryStore(0, 0))
	require.NoError(t, s.Start())
	s.Stop()
}
