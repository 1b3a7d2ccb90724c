package api

import (
	"net/http"

	"go.uber.org/zap"
)

// Healthz проверяет доступность БД.
//
// @Summary  Health check
// @Tags     health
// @Produce  plain
// @Success  200 {string} string "ok"
// @Failure  503 {string} string "unavailable"
// @Router   /healthz [get]
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(ContentType, "text/plain; charset=utf-8")
	if h.Health != nil {
		if err := h.Health.Ping(r.Context()); err != nil {
			h.Log.Warn("health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("unavailable"))
			return
		}
	}
	_, _ = w.Write([]byte("ok"))
}
