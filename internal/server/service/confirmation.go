package service

import (
	"context"
	"strings"

	"github.com/alexmueller07/weather-stylist/internal/server/mailer"
	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

// ConfirmationService отправляет приветственное письмо по запросу клиента.
type ConfirmationService struct {
	mail     Mailer
	from     string
	sendHour int
}

// NewConfirmationService создаёт ConfirmationService.
func NewConfirmationService(mail Mailer, from string, sendHour int) *ConfirmationService {
	return &ConfirmationService{mail: mail, from: from, sendHour: sendHour}
}

// Send отправляет приветствие и возвращает идентификатор письма у провайдера.
// Пустые firstName или email — ErrInvalidInput.
func (s *ConfirmationService) Send(ctx context.Context, firstName, email string) (string, error) {
	firstName = strings.TrimSpace(firstName)
	email = strings.TrimSpace(email)
	if firstName == "" || email == "" {
		return "", serr.ErrInvalidInput
	}

	content, err := mailer.RenderWelcome(firstName, s.sendHour)
	if err != nil {
		return "", err
	}

	return s.mail.Send(ctx, mailer.Message{
		From:    s.from,
		To:      []string{email},
		Subject: content.Subject,
		HTML:    content.HTML,
	})
}
