package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/alexmueller07/weather-stylist/internal/server/mailer"
	"github.com/alexmueller07/weather-stylist/internal/server/models"
	"github.com/alexmueller07/weather-stylist/internal/server/timezone"
	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
	"github.com/alexmueller07/weather-stylist/internal/shared/logger"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubscribeInput — данные формы подписки.
type SubscribeInput struct {
	FirstName string
	Email     string
	Latitude  float64
	Longitude float64
	Timezone  string  // пусто — определить по координатам
	City      *string // nil — определить геокодером
}

// SubscriptionOptions — настройки SubscriptionService.
type SubscriptionOptions struct {
	WelcomeFrom string
	SendHour    int // час рассылки, упоминается в приветственном письме
}

// SubscriptionService регистрирует подписчиков.
type SubscriptionService struct {
	users UsersRepo
	zones ZoneEstimator
	geo   Geocoder
	mail  Mailer
	log   *logger.Logger

	welcomeFrom string
	sendHour    int
}

// NewSubscriptionService создаёт SubscriptionService. geo может быть nil.
func NewSubscriptionService(users UsersRepo, zones ZoneEstimator, geo Geocoder, mail Mailer, log *logger.Logger, opts SubscriptionOptions) *SubscriptionService {
	if log == nil {
		log = logger.NewNop()
	}
	return &SubscriptionService{
		users:       users,
		zones:       zones,
		geo:         geo,
		mail:        mail,
		log:         log,
		welcomeFrom: opts.WelcomeFrom,
		sendHour:    opts.SendHour,
	}
}

// Subscribe валидирует форму, дополняет пояс и город, сохраняет подписчика
// и отправляет приветственное письмо.
//
// Ошибки:
//   - ErrInvalidInput — невалидные поля
//   - ErrAlreadyExists — email уже подписан
//
// Ошибка отправки приветствия пишется в журнал и не отменяет подписку.
func (s *SubscriptionService) Subscribe(ctx context.Context, in SubscribeInput) (models.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := validate(in); err != nil {
		return models.User{}, err
	}

	nu := models.NewUser{
		FirstName: in.FirstName,
		Email:     in.Email,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Timezone:  s.zoneFor(in),
		City:      s.cityFor(ctx, in),
	}

	user, err := s.users.Create(ctx, nu)
	if err != nil {
		return models.User{}, err
	}

	s.log.Info("subscriber registered",
		zap.String("email", user.Email),
		zap.String("timezone", user.Timezone),
	)
	s.sendWelcome(ctx, user)
	return user, nil
}

// Lookup возвращает подписчика по email (без учёта регистра и пробелов).
//
// Ошибки:
//   - ErrInvalidInput — email не похож на адрес
//   - ErrNotFound — подписчика нет
func (s *SubscriptionService) Lookup(ctx context.Context, email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) {
		return models.User{}, fmt.Errorf("%w: invalid email address", serr.ErrInvalidInput)
	}
	return s.users.GetByEmail(ctx, email)
}

func validate(in SubscribeInput) error {
	switch {
	case utf8.RuneCountInString(in.FirstName) < 2:
		return fmt.Errorf("%w: first name must be at least 2 characters", serr.ErrInvalidInput)
	case !emailRe.MatchString(in.Email):
		return fmt.Errorf("%w: invalid email address", serr.ErrInvalidInput)
	case math.IsNaN(in.Latitude) || in.Latitude < -90 || in.Latitude > 90:
		return fmt.Errorf("%w: latitude must be between -90 and 90", serr.ErrInvalidInput)
	case math.IsNaN(in.Longitude) || in.Longitude < -180 || in.Longitude > 180:
		return fmt.Errorf("%w: longitude must be between -180 and 180", serr.ErrInvalidInput)
	}
	return nil
}

// zoneFor оставляет переданный пояс, если он распознаётся, иначе оценивает по координатам.
func (s *SubscriptionService) zoneFor(in SubscribeInput) string {
	tz := strings.TrimSpace(in.Timezone)
	if tz != "" {
		if _, err := timezone.Resolve(tz); err == nil {
			return tz
		}
		s.log.Warn("subscribe: unknown timezone, estimating from coordinates", zap.String("timezone", tz))
	}
	if s.zones == nil {
		return timezone.FixedOffsetName(in.Longitude)
	}
	return s.zones.Estimate(in.Latitude, in.Longitude)
}

// cityFor возвращает переданный город или результат геокодера; ошибки геокодера не фатальны.
func (s *SubscriptionService) cityFor(ctx context.Context, in SubscribeInput) *string {
	if in.City != nil {
		if c := strings.TrimSpace(*in.City); c != "" {
			return &c
		}
	}
	if s.geo == nil {
		return nil
	}

	city, err := s.geo.City(ctx, in.Latitude, in.Longitude)
	if err != nil {
		s.log.Warn("subscribe: reverse geocoding failed", zap.Error(err))
		return nil
	}
	if city == "" {
		return nil
	}
	return &city
}

func (s *SubscriptionService) sendWelcome(ctx context.Context, u models.User) {
	content, err := mailer.RenderWelcome(u.FirstName, s.sendHour)
	if err != nil {
		s.log.Error("subscribe: render welcome email", zap.Error(err))
		return
	}

	id, err := s.mail.Send(ctx, mailer.Message{
		From:    s.welcomeFrom,
		To:      []string{u.Email},
		Subject: content.Subject,
		HTML:    content.HTML,
	})
	if err != nil {
		s.log.Warn("subscribe: welcome email not sent", zap.String("email", u.Email), zap.Error(err))
		return
	}
	s.log.Info("welcome email sent", zap.String("email", u.Email), zap.String("message_id", id))
}
