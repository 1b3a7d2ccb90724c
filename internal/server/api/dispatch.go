package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
	"github.com/alexmueller07/weather-stylist/internal/shared/models"
)

// Dispatch запускает проход рассылки для локального часа ?hour (по умолчанию из конфига).
//
// @Summary      Run daily dispatch
// @Description  Sends the daily email to every active subscriber whose local hour equals the target hour.
// @Description  Intended to be called hourly by an external scheduler.
// @Tags         dispatch
// @Produce      json
// @Security     BearerAuth
// @Param        hour query int false "Target local hour (0-23)"
// @Success      200 {object} models.DispatchResponse
// @Failure      400 {object} models.ErrorResponse "Invalid hour"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Sweep failed"
// @Router       /dispatch [get]
// @Router       /dispatch [post]
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	hour := h.DefaultHour
	if raw := strings.TrimSpace(r.URL.Query().Get("hour")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			WriteErrorAt(w, http.StatusBadRequest, "hour must be an integer between 0 and 23", time.Now())
			return
		}
		hour = n
	}

	res, err := h.Svc.Dispatch.Sweep(r.Context(), hour)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteErrorAt(w, http.StatusBadRequest, err.Error(), time.Now())
		default:
			h.Log.Error("dispatch sweep failed", zap.Int("hour", hour), zap.Error(err))
			WriteErrorAt(w, http.StatusInternalServerError, err.Error(), time.Now())
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.DispatchResponse{
		Success: true,
		Message: "Daily weather email process completed",
		Data: models.DispatchData{
			Processed:  res.Processed,
			Errors:     res.Errors,
			TotalUsers: res.TotalUsers,
		},
		Timestamp: time.Now().UTC(),
	})
}
