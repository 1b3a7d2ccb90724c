// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alexmueller07/weather-stylist/internal/server/crypto"
	"github.com/alexmueller07/weather-stylist/internal/shared/models"
)

// DispatchAuth проверяет bearer-токен внешнего таймера перед запуском рассылки.
type DispatchAuth struct {
	cfg     crypto.JWTConfig
	enabled bool
}

// NewDispatchAuth создаёт middleware. При enabled=false запросы пропускаются без проверки.
func NewDispatchAuth(cfg crypto.JWTConfig, enabled bool) *DispatchAuth {
	return &DispatchAuth{cfg: cfg, enabled: enabled}
}

// Middleware возвращает HTTP middleware.
//
// Ожидает заголовок Authorization: Bearer <token>.
// В случае ошибки отвечает 401 с JSON {success:false, error}.
func (a *DispatchAuth) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.enabled {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			if _, err := crypto.ParseDispatchToken(tokenStr, a.cfg); err != nil {
				if errors.Is(err, crypto.ErrTokenExpired) {
					writeUnauthorized(w, "token expired")
					return
				}
				writeUnauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	now := time.Now().UTC()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Success: false, Error: msg, Timestamp: &now})
}
