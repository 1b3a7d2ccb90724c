package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

// Resend — транспорт через https://resend.com (POST /emails).
type Resend struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewResend создаёт клиент Resend.
func NewResend(baseURL, apiKey string, timeout time.Duration) *Resend {
	return &Resend{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// Send отправляет письмо. Ответ провайдера не-2xx возвращается как ErrUpstream
// со статусом и телом ответа.
func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(resendRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/emails", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := r.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: resend: %v", serr.ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return "", fmt.Errorf("%w: email service error: %d - %s",
			serr.ErrUpstream, res.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out resendResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: resend: decode: %v", serr.ErrUpstream, err)
	}
	return out.ID, nil
}
