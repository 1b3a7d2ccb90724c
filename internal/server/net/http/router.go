// Package http реализует маршрутизацию HTTP-слоя сервера Daily Weather Stylist.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов и CORS-заголовки;
//   - проверку JWT на эндпоинте запуска рассылки.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/alexmueller07/weather-stylist/internal/server/api"
	"github.com/alexmueller07/weather-stylist/internal/server/middleware"
)

// Options — параметры роутера из секции server конфига.
type Options struct {
	AllowedOrigin string
	MaxBodyBytes  int64 // 0 — без ограничения
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты подписки и подтверждения;
//   - эндпоинт рассылки за DispatchAuth;
//   - health-check и swagger.
func NewRouter(h *api.Handler, auth *middleware.DispatchAuth, opts Options) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.AllowedOrigin))
	if opts.MaxBodyBytes > 0 {
		r.Use(chimw.RequestSize(opts.MaxBodyBytes))
	}

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", h.Healthz)

	// Публичные пути
	r.Post("/users", h.Subscribe)
	r.Get("/users/{email}", h.GetSubscriber)
	r.Post("/confirmation", h.SendConfirmation)

	// защищённый запуск рассылки
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware())
		r.Get("/dispatch", h.Dispatch)
		r.Post("/dispatch", h.Dispatch)
	})

	return r
}
