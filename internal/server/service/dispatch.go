package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexmueller07/weather-stylist/internal/server/mailer"
	"github.com/alexmueller07/weather-stylist/internal/server/models"
	"github.com/alexmueller07/weather-stylist/internal/server/stylist"
	"github.com/alexmueller07/weather-stylist/internal/server/timezone"
	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
	"github.com/alexmueller07/weather-stylist/internal/shared/logger"
)

// исходы обработки одного подписчика в журнале рассылки
const (
	outcomeSent    = "sent"
	outcomeSkipped = "skipped"
	outcomeFailed  = "failed"
)

// SweepResult — итог одного прохода рассылки.
type SweepResult struct {
	Processed  int
	Errors     int
	TotalUsers int
}

// DispatchOptions — настройки DispatchService.
type DispatchOptions struct {
	From        string
	Workers     int           // <= 1 — последовательно
	UserTimeout time.Duration // 0 — без ограничения
	Now         func() time.Time
}

// DispatchService выполняет ежедневную рассылку.
type DispatchService struct {
	users    UsersRepo
	forecast ForecastProvider
	mail     Mailer
	log      *logger.Logger

	from        string
	workers     int
	userTimeout time.Duration
	now         func() time.Time
}

// NewDispatchService создаёт DispatchService.
func NewDispatchService(users UsersRepo, forecast ForecastProvider, mail Mailer, log *logger.Logger, opts DispatchOptions) *DispatchService {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &DispatchService{
		users:       users,
		forecast:    forecast,
		mail:        mail,
		log:         log,
		from:        opts.From,
		workers:     opts.Workers,
		userTimeout: opts.UserTimeout,
		now:         opts.Now,
	}
}

// Sweep отправляет письмо каждому активному подписчику, у которого
// в момент запуска локальный час равен targetHour.
//
// Момент запуска фиксируется один раз на весь проход. Ошибка по одному
// подписчику учитывается в Errors и не прерывает проход; ошибкой всего
// прохода считается только невозможность получить список подписчиков.
func (s *DispatchService) Sweep(ctx context.Context, targetHour int) (SweepResult, error) {
	if targetHour < 0 || targetHour > 23 {
		return SweepResult{}, fmt.Errorf("%w: hour must be between 0 and 23", serr.ErrInvalidInput)
	}

	users, err := s.users.ListActive(ctx)
	if err != nil {
		return SweepResult{}, err
	}

	now := s.now()
	s.log.Info("dispatch sweep started",
		zap.Int("target_hour", targetHour),
		zap.Int("users", len(users)),
		zap.Time("at", now.UTC()),
	)

	var processed, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, u := range users {
		u := u
		g.Go(func() error {
			switch s.deliver(ctx, u, now, targetHour) {
			case outcomeSent:
				processed.Add(1)
			case outcomeFailed:
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	res := SweepResult{
		Processed:  int(processed.Load()),
		Errors:     int(failed.Load()),
		TotalUsers: len(users),
	}
	s.log.Info("dispatch sweep finished",
		zap.Int("processed", res.Processed),
		zap.Int("errors", res.Errors),
		zap.Int("total_users", res.TotalUsers),
	)
	return res, nil
}

// deliver обрабатывает одного подписчика и возвращает исход.
func (s *DispatchService) deliver(ctx context.Context, u models.User, now time.Time, targetHour int) string {
	loc, err := timezone.Resolve(u.Timezone)
	if err != nil {
		s.log.Warn("dispatch: unresolvable timezone", zap.String("email", u.Email), zap.Error(err))
		s.log.LogDispatch(u.Email, u.Timezone, -1, targetHour, outcomeFailed)
		return outcomeFailed
	}

	local := now.In(loc)
	if local.Hour() != targetHour {
		s.log.LogDispatch(u.Email, u.Timezone, local.Hour(), targetHour, outcomeSkipped)
		return outcomeSkipped
	}

	if s.userTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.userTimeout)
		defer cancel()
	}

	if err := s.sendDaily(ctx, u, local); err != nil {
		s.log.Error("dispatch: send failed", zap.String("email", u.Email), zap.Error(err))
		s.log.LogDispatch(u.Email, u.Timezone, local.Hour(), targetHour, outcomeFailed)
		return outcomeFailed
	}

	s.log.LogDispatch(u.Email, u.Timezone, local.Hour(), targetHour, outcomeSent)
	return outcomeSent
}

// sendDaily собирает и отправляет письмо. local — момент запуска в поясе подписчика.
func (s *DispatchService) sendDaily(ctx context.Context, u models.User, local time.Time) error {
	today := local.Format(time.DateOnly)
	yesterday := local.AddDate(0, 0, -1).Format(time.DateOnly)

	todaySample, err := s.forecast.GetForecast(ctx, u.Latitude, u.Longitude, u.Timezone, today)
	if err != nil {
		return fmt.Errorf("forecast %s: %w", today, err)
	}
	yesterdaySample, err := s.forecast.GetForecast(ctx, u.Latitude, u.Longitude, u.Timezone, yesterday)
	if err != nil {
		return fmt.Errorf("forecast %s: %w", yesterday, err)
	}

	day, err := stylist.Summarize(todaySample.HourlyTemperaturesC, todaySample.HourlyWeatherCodes)
	if err != nil {
		return fmt.Errorf("summarize %s: %w", today, err)
	}
	prev, err := stylist.Summarize(yesterdaySample.HourlyTemperaturesC, yesterdaySample.HourlyWeatherCodes)
	if err != nil {
		return fmt.Errorf("summarize %s: %w", yesterday, err)
	}

	rec := stylist.Recommend(float64(day.HighF), float64(day.LowF), day.Code)

	content, err := mailer.RenderDaily(mailer.DailyEmail{
		FirstName:   u.FirstName,
		City:        cityOrEmpty(u.City),
		Comparison:  stylist.Compare(day.HighF, prev.HighF),
		Description: day.Description,
		HighF:       day.HighF,
		LowF:        day.LowF,
		Outfit:      rec.Outfit,
		Reason:      rec.Reason,
	})
	if err != nil {
		return err
	}

	id, err := s.mail.Send(ctx, mailer.Message{
		From:    s.from,
		To:      []string{u.Email},
		Subject: content.Subject,
		HTML:    content.HTML,
	})
	if err != nil {
		return err
	}
	s.log.Debug("dispatch: email accepted", zap.String("email", u.Email), zap.String("message_id", id))
	return nil
}

func cityOrEmpty(c *string) string {
	if c == nil {
		return ""
	}
	return *c
}
