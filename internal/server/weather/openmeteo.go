// Package weather содержит клиент прогноза погоды Open-Meteo.
//
// Клиент запрашивает почасовой прогноз (температура в °C и код погоды WMO)
// на одну календарную дату в поясе пользователя.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

// ForecastSample — почасовой прогноз на одну дату.
//
// Пропуски температуры в ответе провайдера (null) хранятся как NaN.
type ForecastSample struct {
	Date                string
	HourlyTemperaturesC []float64
	HourlyWeatherCodes  []int
}

// OpenMeteo — клиент https://open-meteo.com.
type OpenMeteo struct {
	baseURL string
	http    *http.Client
}

// NewOpenMeteo создаёт клиент с базовым адресом baseURL и таймаутом запроса.
func NewOpenMeteo(baseURL string, timeout time.Duration) *OpenMeteo {
	return &OpenMeteo{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type forecastResponse struct {
	Hourly struct {
		Time          []string   `json:"time"`
		Temperature2m []*float64 `json:"temperature_2m"`
		WeatherCode   []*int     `json:"weathercode"`
	} `json:"hourly"`
}

// GetForecast возвращает почасовой прогноз на date (YYYY-MM-DD) в поясе tz.
//
// Любой не-2xx ответ и некорректное тело приводятся к ErrUpstream.
func (c *OpenMeteo) GetForecast(ctx context.Context, lat, lon float64, tz, date string) (ForecastSample, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("hourly", "temperature_2m,weathercode")
	q.Set("timezone", tz)
	q.Set("start_date", date)
	q.Set("end_date", date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return ForecastSample{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return ForecastSample{}, fmt.Errorf("%w: open-meteo: %v", serr.ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return ForecastSample{}, fmt.Errorf("%w: open-meteo: %s %s",
			serr.ErrUpstream, res.Status, strings.TrimSpace(string(raw)))
	}

	var body forecastResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return ForecastSample{}, fmt.Errorf("%w: open-meteo: decode: %v", serr.ErrUpstream, err)
	}

	sample := ForecastSample{
		Date:                date,
		HourlyTemperaturesC: make([]float64, len(body.Hourly.Temperature2m)),
		HourlyWeatherCodes:  make([]int, len(body.Hourly.WeatherCode)),
	}
	for i, t := range body.Hourly.Temperature2m {
		if t == nil {
			sample.HourlyTemperaturesC[i] = math.NaN()
			continue
		}
		sample.HourlyTemperaturesC[i] = *t
	}
	for i, code := range body.Hourly.WeatherCode {
		if code != nil {
			sample.HourlyWeatherCodes[i] = *code
		}
	}
	return sample, nil
}
