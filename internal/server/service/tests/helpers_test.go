package tests

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexmueller07/weather-stylist/internal/server/models"
	"github.com/alexmueller07/weather-stylist/internal/server/weather"
	"github.com/alexmueller07/weather-stylist/internal/shared/utils"
)

// 2026-07-01 04:00 UTC — в Лондоне (BST) 05:00, в Нью-Йорке 00:00
var sweepAt = time.Date(2026, 7, 1, 4, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return sweepAt }

func user(name, email, tz string, lat, lon float64) models.User {
	return models.User{
		ID:        uuid.New(),
		FirstName: name,
		Email:     email,
		Latitude:  lat,
		Longitude: lon,
		Timezone:  tz,
		City:      utils.StrPtr("London"),
		IsActive:  true,
		CreatedAt: sweepAt.Add(-24 * time.Hour),
	}
}

// sample строит сутки почасового прогноза: температура от minC до maxC, код на полдень noonCode.
func sample(date string, minC, maxC float64, noonCode int) weather.ForecastSample {
	temps := make([]float64, 24)
	codes := make([]int, 24)
	for i := range temps {
		temps[i] = minC + (maxC-minC)*float64(i)/23
		codes[i] = 1
	}
	codes[12] = noonCode
	return weather.ForecastSample{Date: date, HourlyTemperaturesC: temps, HourlyWeatherCodes: codes}
}
