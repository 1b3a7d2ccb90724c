package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexmueller07/weather-stylist/internal/server/crypto"
	"github.com/alexmueller07/weather-stylist/internal/server/middleware"
	"github.com/alexmueller07/weather-stylist/internal/shared/models"
)

func jwtConfig() crypto.JWTConfig {
	return crypto.JWTConfig{
		Issuer:     "weather-stylist",
		Audience:   "dispatch",
		SigningKey: "supersecretkeysupersecretkey123456",
		TTL:        time.Minute,
	}
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestDispatchAuth_ValidToken(t *testing.T) {
	cfg := jwtConfig()
	token, err := crypto.NewDispatchToken(cfg)
	require.NoError(t, err)

	called := false
	h := middleware.NewDispatchAuth(cfg, true).Middleware()(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/dispatch", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, called)
}

func TestDispatchAuth_MissingToken(t *testing.T) {
	called := false
	h := middleware.NewDispatchAuth(jwtConfig(), true).Middleware()(okHandler(&called))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/dispatch", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.False(t, called)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.False(t, body.Success)
	require.Equal(t, "missing bearer token", body.Error)
	require.NotNil(t, body.Timestamp)
}

func TestDispatchAuth_ExpiredToken(t *testing.T) {
	cfg := jwtConfig()
	cfg.TTL = -time.Minute
	token, err := crypto.NewDispatchToken(cfg)
	require.NoError(t, err)

	called := false
	h := middleware.NewDispatchAuth(jwtConfig(), true).Middleware()(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/dispatch", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), "token expired")
	require.False(t, called)
}

func TestDispatchAuth_InvalidToken(t *testing.T) {
	called := false
	h := middleware.NewDispatchAuth(jwtConfig(), true).Middleware()(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/dispatch", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), "invalid token")
	require.False(t, called)
}

func TestDispatchAuth_Disabled_PassesThrough(t *testing.T) {
	called := false
	h := middleware.NewDispatchAuth(jwtConfig(), false).Middleware()(okHandler(&called))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dispatch", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, called)
}

func TestExtractBearer(t *testing.T) {
	require.Equal(t, "abc", middleware.ExtractBearer("Bearer abc"))
	require.Equal(t, "abc", middleware.ExtractBearer("  bearer   abc "))
	require.Equal(t, "", middleware.ExtractBearer("Basic abc"))
	require.Equal(t, "", middleware.ExtractBearer("Bearer"))
	require.Equal(t, "", middleware.ExtractBearer(""))
}
