package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

const charsetUTF8 = "UTF-8"

// SESClient — часть клиента AWS SES, которая нужна транспорту.
type SESClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SES — транспорт через Amazon Simple Email Service.
type SES struct {
	client SESClient
}

// NewSES загружает конфигурацию AWS из стандартной цепочки (env, shared config, IAM role).
func NewSES(ctx context.Context, region string) (*SES, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSESWithClient(ses.NewFromConfig(cfg)), nil
}

// NewSESWithClient оборачивает готовый клиент SES.
func NewSESWithClient(client SESClient) *SES {
	return &SES{client: client}
}

// Send отправляет HTML-письмо и возвращает MessageId.
func (s *SES) Send(ctx context.Context, msg Message) (string, error) {
	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charsetUTF8)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String(charsetUTF8)},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: ses: %v", serr.ErrUpstream, err)
	}
	return aws.ToString(out.MessageId), nil
}
