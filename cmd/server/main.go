// @title           Daily Weather Stylist API
// @version         1.0
// @description     Daily weather forecast and outfit recommendation emails.
// @description     Subscribers register with coordinates; an external scheduler triggers the hourly dispatch.

// @contact.name   Alex Mueller
// @contact.url    https://github.com/alexmueller07

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа серверного приложения Daily Weather Stylist.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - подключение к базе данных и применение миграций;
//   - создание клиентов погоды, геокодера и почты;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - обработку системных сигналов и корректное (graceful) завершение работы.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexmueller07/weather-stylist/internal/server/api"
	"github.com/alexmueller07/weather-stylist/internal/server/config"
	"github.com/alexmueller07/weather-stylist/internal/server/crypto"
	"github.com/alexmueller07/weather-stylist/internal/server/geo"
	"github.com/alexmueller07/weather-stylist/internal/server/mailer"
	"github.com/alexmueller07/weather-stylist/internal/server/middleware"
	h "github.com/alexmueller07/weather-stylist/internal/server/net/http"
	"github.com/alexmueller07/weather-stylist/internal/server/repository"
	"github.com/alexmueller07/weather-stylist/internal/server/service"
	"github.com/alexmueller07/weather-stylist/internal/server/timezone"
	"github.com/alexmueller07/weather-stylist/internal/server/weather"
	"github.com/alexmueller07/weather-stylist/internal/shared/logger"

	_ "github.com/alexmueller07/weather-stylist/swagger/docs"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "no .env file loaded: %v\n", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()
	sugar := log.Sugar()

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// подключаем базу данных и накатываем миграции
	db, err := config.OpenDB(ctx, cfg.DB, cfg.Migrations)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	// внешние клиенты
	sender, err := mailer.NewSender(ctx, cfg.Mail)
	if err != nil {
		sugar.Fatal(err)
	}
	zones, err := timezone.NewDefaultEstimator()
	if err != nil {
		sugar.Warnf("timezone dataset unavailable, falling back to longitude offsets: %v", err)
		zones = timezone.NewEstimator(nil)
	}
	clients := service.Clients{
		Forecast: weather.NewOpenMeteo(cfg.Weather.BaseURL, cfg.Weather.Timeout),
		Mailer:   sender,
		Zones:    zones,
	}
	if cfg.Geo.Enabled {
		clients.Geocoder = geo.NewNominatim(cfg.Geo.BaseURL, cfg.Geo.UserAgent, cfg.Geo.Timeout)
	}

	// создаём репы и сервисы
	usersRepo := repository.NewUsersRepository(db)
	svc := service.NewServices(service.Repositories{Users: usersRepo}, clients, cfg, log)

	// создаём хандлер и роутер
	handler := api.NewHandler(svc, usersRepo, log, cfg.Dispatch.DefaultHour)
	auth := middleware.NewDispatchAuth(crypto.FromAuthConfig(cfg.Auth), cfg.Auth.Enabled)
	router := h.NewRouter(handler, auth, h.Options{
		AllowedOrigin: cfg.Server.AllowedOrigin,
		MaxBodyBytes:  cfg.Server.MaxBodyBytes,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		log.Info("server started",
			zap.String("addr", addr),
			zap.Bool("tls", cfg.TLS.Enabled),
			zap.String("mail_provider", cfg.Mail.Provider),
		)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Errorf("server stopped with error: %v", err)
		return
	}
	sugar.Info("server gracefully stopped")
}
