package weather

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestTargetKeepsParamOrder(t *testing.T) {
	target := NewRequestTarget("https://api.example.com/v1/current.json", "q", "London", "key", "k", "days", "2")

	assert.Equal(t, "https://api.example.com/v1/current.json?q=London&key=k&days=2", target.String())
	assert.Equal(t, "https://api.example.com/v1/current.json", target.Endpoint())

	v, ok := target.Param("days")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = target.Param("units")
	assert.False(t, ok)
}

func TestRequestTargetEncodesValues(t *testing.T) {
	target := NewRequestTarget("https://x.test/a", "q", "New York US", "key", "")

	assert.Equal(t, "https://x.test/a?q=New+York+US&key=", target.String())

	key, ok := target.Param("key")
	assert.True(t, ok)
	assert.Empty(t, key)
}

func TestRequestTargetWithoutParams(t *testing.T) {
	assert.Equal(t, "https://x.test/a", NewRequestTarget("https://x.test/a").String())
	// a dangling key has no value and is dropped
	assert.Equal(t, "https://x.test/a", NewRequestTarget("https://x.test/a", "q").String())
}

func TestJoinParams(t *testing.T) {
	cases := []struct {
		params Params
		want   string
	}{
		{Params{"London"}, "London"},
		{Params{"Paris", "FR"}, "Paris FR"},
		{Params{" ", "Oslo", " "}, "Oslo"},
		{Params{}, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, JoinParams(tc.params))
	}
}

func TestTrunc(t *testing.T) {
	assert.Equal(t, 11, Trunc(11.9))
	assert.Equal(t, -2, Trunc(-2.7))
	assert.Equal(t, 0, Trunc(math.NaN()))
	assert.Equal(t, 0, Trunc(math.Inf(1)))
	assert.Equal(t, 0, Trunc(1e300))
	assert.Equal(t, 0, Trunc(-1e300))
	assert.Equal(t, 0, Trunc(float64(math.MaxInt64)))
	assert.Equal(t, 123456789, Trunc(123456789.9))
}

func TestDecodeResponse(t *testing.T) {
	t.Run("empty object has no location", func(t *testing.T) {
		resp, err := DecodeResponse([]byte(`{}`))
		require.NoError(t, err)
		assert.False(t, HasLocation(resp))
	})

	t.Run("null name has no location", func(t *testing.T) {
		resp, err := DecodeResponse([]byte(`{"location":{"name":null,"region":"x"}}`))
		require.NoError(t, err)
		assert.False(t, HasLocation(resp))
	})

	t.Run("api error object has no location", func(t *testing.T) {
		resp, err := DecodeResponse([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
		require.NoError(t, err)
		assert.False(t, HasLocation(resp))
	})

	t.Run("empty name is still a location", func(t *testing.T) {
		resp, err := DecodeResponse([]byte(`{"location":{"name":""}}`))
		require.NoError(t, err)
		assert.True(t, HasLocation(resp))
	})

	t.Run("mistyped field keeps the rest", func(t *testing.T) {
		resp, err := DecodeResponse([]byte(`{"location":{"name":"London"},"current":{"humidity":"82","temp_c":11}}`))
		require.NoError(t, err)
		require.True(t, HasLocation(resp))
		assert.Equal(t, 11.0, CurrentOf(resp).TempC)
		assert.Zero(t, CurrentOf(resp).Humidity)
	})

	t.Run("non-object body has no location", func(t *testing.T) {
		for _, body := range []string{`[]`, `"London"`, `42`, `null`} {
			resp, err := DecodeResponse([]byte(body))
			require.NoError(t, err, body)
			assert.False(t, HasLocation(resp), body)
		}
	})

	t.Run("garbage is an error", func(t *testing.T) {
		_, err := DecodeResponse([]byte(`<html>bad gateway</html>`))
		assert.Error(t, err)
	})
}

func TestFieldAccessorsTolerateMissingBlocks(t *testing.T) {
	assert.Equal(t, CurrentBlock{}, CurrentOf(nil))
	assert.Equal(t, CurrentBlock{}, CurrentOf(&Response{}))
	assert.Equal(t, DayBlock{}, DayOf(&Response{}, 0))
	assert.Equal(t, DayBlock{}, DayOf(&Response{Forecast: &ForecastBlock{ForecastDay: []ForecastDay{{}}}}, 0))
	assert.Equal(t, DayBlock{}, DayOf(&Response{Forecast: &ForecastBlock{}}, 1))
	assert.Empty(t, ConditionText(nil))
}
