package tests

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexmueller07/weather-stylist/internal/server/stylist"
	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	require.InDelta(t, 32.0, stylist.CelsiusToFahrenheit(0), 1e-9)
	require.InDelta(t, 212.0, stylist.CelsiusToFahrenheit(100), 1e-9)
	require.InDelta(t, -40.0, stylist.CelsiusToFahrenheit(-40), 1e-9)
}

func TestSummarize_HighLowAndNoonCode(t *testing.T) {
	temps := make([]float64, 24)
	codes := make([]int, 24)
	for i := range temps {
		temps[i] = 10 + float64(i%12) // 10..21 °C
		codes[i] = 1
	}
	codes[stylist.NoonIndex] = 61

	s, err := stylist.Summarize(temps, codes)
	require.NoError(t, err)
	require.Equal(t, 70, s.HighF) // 21°C = 69.8°F
	require.Equal(t, 50, s.LowF)  // 10°C = 50°F
	require.Equal(t, 61, s.Code)
	require.Equal(t, "slight rain", s.Description)
}

func TestSummarize_ShortSeriesFallsBackToFirstCode(t *testing.T) {
	s, err := stylist.Summarize([]float64{5, 7}, []int{71, 3})
	require.NoError(t, err)
	require.Equal(t, 71, s.Code)
	require.Equal(t, 45, s.HighF) // 7°C = 44.6°F
	require.Equal(t, 41, s.LowF)
}

func TestSummarize_NoCodes(t *testing.T) {
	s, err := stylist.Summarize([]float64{0}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, s.Code)
	require.Equal(t, 32, s.HighF)
}

func TestSummarize_SkipsGaps(t *testing.T) {
	s, err := stylist.Summarize([]float64{math.NaN(), -5, math.NaN(), 0}, []int{0})
	require.NoError(t, err)
	require.Equal(t, 32, s.HighF)
	require.Equal(t, 23, s.LowF)
}

func TestSummarize_EmptySeries(t *testing.T) {
	_, err := stylist.Summarize(nil, nil)
	require.ErrorIs(t, err, serr.ErrInvalidInput)

	_, err = stylist.Summarize([]float64{math.NaN()}, []int{1})
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

func TestCompare(t *testing.T) {
	require.Equal(t, "Today will be warmer than yesterday.", stylist.Compare(73, 70))
	require.Equal(t, "Today will be about the same as yesterday.", stylist.Compare(72, 70))
	require.Equal(t, "Today will be about the same as yesterday.", stylist.Compare(68, 70))
	require.Equal(t, "Today will be colder than yesterday.", stylist.Compare(67, 70))
}
