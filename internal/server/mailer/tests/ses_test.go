package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/require"

	"github.com/alexmueller07/weather-stylist/internal/server/config"
	"github.com/alexmueller07/weather-stylist/internal/server/mailer"
	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

type fakeSES struct {
	got *ses.SendEmailInput
	err error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("ses-42")}, nil
}

func TestSES_Send_MapsMessage(t *testing.T) {
	fake := &fakeSES{}
	s := mailer.NewSESWithClient(fake)

	id, err := s.Send(context.Background(), mailer.Message{
		From:    "from@x.io",
		To:      []string{"to@x.io"},
		Subject: "Hello",
		HTML:    "<b>hi</b>",
	})
	require.NoError(t, err)
	require.Equal(t, "ses-42", id)

	require.Equal(t, "from@x.io", aws.ToString(fake.got.Source))
	require.Equal(t, []string{"to@x.io"}, fake.got.Destination.ToAddresses)
	require.Equal(t, "Hello", aws.ToString(fake.got.Message.Subject.Data))
	require.Equal(t, "<b>hi</b>", aws.ToString(fake.got.Message.Body.Html.Data))
	require.Equal(t, "UTF-8", aws.ToString(fake.got.Message.Body.Html.Charset))
}

func TestSES_Send_Error(t *testing.T) {
	s := mailer.NewSESWithClient(&fakeSES{err: errors.New("throttled")})

	_, err := s.Send(context.Background(), mailer.Message{})
	require.ErrorIs(t, err, serr.ErrUpstream)
	require.Contains(t, err.Error(), "throttled")
}

func TestNewSender_ByProvider(t *testing.T) {
	s, err := mailer.NewSender(context.Background(), config.MailConfig{
		Provider: "resend",
		Resend:   config.ResendConfig{BaseURL: "http://localhost", APIKey: "k"},
	})
	require.NoError(t, err)
	require.IsType(t, &mailer.Resend{}, s)

	_, err = mailer.NewSender(context.Background(), config.MailConfig{Provider: "carrier-pigeon"})
	require.Error(t, err)
}
