// Package crypto выпускает и проверяет JWT, которыми внешний таймер
// подтверждает право запустить рассылку.
//
// Токены подписываются HS256 общим ключом auth.signing_key,
// живут недолго (auth.token_ttl) и несут subject "dispatch".
package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/alexmueller07/weather-stylist/internal/server/config"
	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

// DispatchSubject — значение sub в токене запуска рассылки.
const DispatchSubject = "dispatch"

// ErrTokenExpired — срок жизни токена истёк.
var ErrTokenExpired = errors.New("token expired")

// JWTConfig описывает параметры выпуска и проверки токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	SigningKey string
	// TTL — срок жизни токена.
	TTL time.Duration
}

// FromAuthConfig переносит секцию auth конфига в JWTConfig.
func FromAuthConfig(a config.AuthConfig) JWTConfig {
	return JWTConfig{
		Issuer:     a.Issuer,
		Audience:   a.Audience,
		SigningKey: a.SigningKey,
		TTL:        a.TokenTTL,
	}
}

// NewDispatchToken создаёт подписанный токен запуска рассылки.
//
// Claims: iss, aud, sub=dispatch, iat, exp и случайный jti.
func NewDispatchToken(cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		Subject:   DispatchSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseDispatchToken проверяет подпись, срок, issuer, audience и subject.
//
// Истёкший токен даёт ErrTokenExpired, остальные нарушения — ErrUnauthorized.
func ParseDispatchToken(tokenStr string, cfg JWTConfig) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithSubject(DispatchSubject),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", serr.ErrUnauthorized, err)
	}
	return claims, nil
}
