// Package mailer отвечает за рендеринг писем и их отправку через почтовый провайдер.
//
// Поддерживаются два транспорта: HTTP API Resend и AWS SES.
// Оба реализуют интерфейс Sender, выбор делается конфигом mail.provider.
package mailer

import (
	"context"
	"fmt"

	"github.com/alexmueller07/weather-stylist/internal/server/config"
)

// Message — готовое к отправке письмо.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender отправляет письмо и возвращает идентификатор сообщения у провайдера.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// NewSender создаёт транспорт по настройкам mail.provider.
func NewSender(ctx context.Context, cfg config.MailConfig) (Sender, error) {
	switch cfg.Provider {
	case "resend":
		return NewResend(cfg.Resend.BaseURL, cfg.Resend.APIKey, cfg.Timeout), nil
	case "ses":
		return NewSES(ctx, cfg.SES.Region)
	default:
		return nil, fmt.Errorf("mail.provider: unknown provider %q", cfg.Provider)
	}
}
