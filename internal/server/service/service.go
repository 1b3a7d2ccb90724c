// Package service содержит бизнес-логику рассылки Daily Weather Stylist.
// Это прослойка между HTTP-обработчиками (api) и хранилищем/внешними API.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/alexmueller07/weather-stylist/internal/server/config"
	"github.com/alexmueller07/weather-stylist/internal/server/mailer"
	"github.com/alexmueller07/weather-stylist/internal/server/models"
	"github.com/alexmueller07/weather-stylist/internal/server/weather"
	"github.com/alexmueller07/weather-stylist/internal/shared/logger"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
}

// Clients — внешние зависимости: погода, геокодер, почта, оценка пояса.
// Geocoder может быть nil, тогда город не определяется.
type Clients struct {
	Forecast ForecastProvider
	Geocoder Geocoder
	Mailer   Mailer
	Zones    ZoneEstimator
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Dispatch     *DispatchService
	Subscription *SubscriptionService
	Confirmation *ConfirmationService
}

// NewServices собирает все сервисы приложения из конфига.
func NewServices(repos Repositories, clients Clients, cfg *config.Config, log *logger.Logger) *Services {
	return &Services{
		Dispatch: NewDispatchService(repos.Users, clients.Forecast, clients.Mailer, log, DispatchOptions{
			From:        cfg.Mail.From,
			Workers:     cfg.Dispatch.Workers,
			UserTimeout: cfg.Dispatch.UserTimeout,
		}),
		Subscription: NewSubscriptionService(repos.Users, clients.Zones, clients.Geocoder, clients.Mailer, log, SubscriptionOptions{
			WelcomeFrom: cfg.Mail.WelcomeFrom,
			SendHour:    cfg.Dispatch.DefaultHour,
		}),
		Confirmation: NewConfirmationService(clients.Mailer, cfg.Mail.WelcomeFrom, cfg.Dispatch.DefaultHour),
	}
}

// HealthRepo — минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo — репозиторий подписчиков.
type UsersRepo interface {
	Create(ctx context.Context, u models.NewUser) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	ListActive(ctx context.Context) ([]models.User, error)
}

// ForecastProvider — источник почасового прогноза.
type ForecastProvider interface {
	GetForecast(ctx context.Context, lat, lon float64, tz, date string) (weather.ForecastSample, error)
}

// Geocoder — обратное геокодирование города.
type Geocoder interface {
	City(ctx context.Context, lat, lon float64) (string, error)
}

// Mailer — почтовый транспорт.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) (string, error)
}

// ZoneEstimator — определение IANA-пояса по координатам.
type ZoneEstimator interface {
	Estimate(lat, lon float64) string
}
