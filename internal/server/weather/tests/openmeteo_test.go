package tests

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexmueller07/weather-stylist/internal/server/weather"
	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

func TestOpenMeteo_GetForecast_BuildsQuery_AndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/forecast", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "51.5072", q.Get("latitude"))
		require.Equal(t, "-0.1276", q.Get("longitude"))
		require.Equal(t, "temperature_2m,weathercode", q.Get("hourly"))
		require.Equal(t, "Europe/London", q.Get("timezone"))
		require.Equal(t, "2026-10-14", q.Get("start_date"))
		require.Equal(t, "2026-10-14", q.Get("end_date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hourly":{"time":["2026-10-14T00:00","2026-10-14T01:00","2026-10-14T02:00"],
			"temperature_2m":[10.5,null,12],"weathercode":[3,null,61]}}`))
	}))
	defer srv.Close()

	c := weather.NewOpenMeteo(srv.URL+"/", time.Second)
	got, err := c.GetForecast(context.Background(), 51.5072, -0.1276, "Europe/London", "2026-10-14")
	require.NoError(t, err)

	require.Equal(t, "2026-10-14", got.Date)
	require.Len(t, got.HourlyTemperaturesC, 3)
	require.Equal(t, 10.5, got.HourlyTemperaturesC[0])
	require.True(t, math.IsNaN(got.HourlyTemperaturesC[1]))
	require.Equal(t, 12.0, got.HourlyTemperaturesC[2])
	require.Equal(t, []int{3, 0, 61}, got.HourlyWeatherCodes)
}

func TestOpenMeteo_GetForecast_Non2xx_IsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":true,"reason":"bad date"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := weather.NewOpenMeteo(srv.URL, time.Second)
	_, err := c.GetForecast(context.Background(), 0, 0, "UTC", "bad")
	require.ErrorIs(t, err, serr.ErrUpstream)
	require.Contains(t, err.Error(), "bad date")
}

func TestOpenMeteo_GetForecast_BadJSON_IsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := weather.NewOpenMeteo(srv.URL, time.Second)
	_, err := c.GetForecast(context.Background(), 0, 0, "UTC", "2026-10-14")
	require.ErrorIs(t, err, serr.ErrUpstream)
}

func TestOpenMeteo_GetForecast_RespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := weather.NewOpenMeteo(srv.URL, 5*time.Second)
	_, err := c.GetForecast(ctx, 0, 0, "UTC", "2026-10-14")
	require.ErrorIs(t, err, serr.ErrUpstream)
}
