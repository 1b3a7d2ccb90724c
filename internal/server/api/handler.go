// Package api реализует HTTP-слой сервера Daily Weather Stylist.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - единый формат ответа {success, ...}.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alexmueller07/weather-stylist/internal/server/service"
	"github.com/alexmueller07/weather-stylist/internal/shared/logger"
	"github.com/alexmueller07/weather-stylist/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Health: проверка доступности БД;
//   - Log: логгер для записи событий и ошибок;
//   - DefaultHour: час рассылки, если ?hour не передан.
type Handler struct {
	Svc         *service.Services
	Health      service.HealthRepo
	Log         *logger.Logger
	DefaultHour int
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, health service.HealthRepo, log *logger.Logger, defaultHour int) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		Svc:         svc,
		Health:      health,
		Log:         log,
		DefaultHour: defaultHour,
	}
}

// WriteJSON пишет v в ответ с указанным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError пишет ошибку в формате {success:false, error}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, models.ErrorResponse{Success: false, Error: msg})
}

// WriteErrorAt — то же, что WriteError, но с полем timestamp.
func WriteErrorAt(w http.ResponseWriter, status int, msg string, at time.Time) {
	at = at.UTC()
	WriteJSON(w, status, models.ErrorResponse{Success: false, Error: msg, Timestamp: &at})
}
