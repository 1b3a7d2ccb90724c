package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	serverModels "github.com/alexmueller07/weather-stylist/internal/server/models"
	"github.com/alexmueller07/weather-stylist/internal/server/service"
	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
	"github.com/alexmueller07/weather-stylist/internal/shared/models"
)

// Subscribe обрабатывает форму подписки.
//
// @Summary      Subscribe
// @Description  Registers a subscriber for the daily weather and outfit email.
// @Description  Timezone and city are derived from coordinates when omitted.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.SubscribeRequest true "Subscription form"
// @Success      201 {object} models.SubscribeResponse
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      409 {object} models.ErrorResponse "Email already subscribed"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users [post]
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	u, err := h.Svc.Subscription.Subscribe(r.Context(), service.SubscribeInput{
		FirstName: req.FirstName,
		Email:     req.Email,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  req.Timezone,
		City:      req.City,
	})
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, "this email is already subscribed")
		default:
			h.Log.Error("subscribe failed", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteJSON(w, http.StatusCreated, models.SubscribeResponse{
		Success: true,
		Message: "Subscription created",
		User:    toSubscriber(u),
	})
}

// GetSubscriber возвращает подписчика по email.
//
// @Summary      Get subscriber
// @Description  Looks up a subscriber by email (case-insensitive).
// @Tags         users
// @Produce      json
// @Param        email path string true "Subscriber email"
// @Success      200 {object} models.SubscribeResponse
// @Failure      400 {object} models.ErrorResponse "Invalid email"
// @Failure      404 {object} models.ErrorResponse "Subscriber not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users/{email} [get]
func (h *Handler) GetSubscriber(w http.ResponseWriter, r *http.Request) {
	// chi отдаёт параметр в исходном виде, если путь был закодирован (alex%40example.com)
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput.Error())
		return
	}

	u, err := h.Svc.Subscription.Lookup(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, "subscriber not found")
		default:
			h.Log.Error("lookup subscriber failed", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.SubscribeResponse{
		Success: true,
		Message: "Subscriber found",
		User:    toSubscriber(u),
	})
}

func toSubscriber(u serverModels.User) models.Subscriber {
	return models.Subscriber{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		Email:     u.Email,
		Latitude:  u.Latitude,
		Longitude: u.Longitude,
		Timezone:  u.Timezone,
		City:      u.City,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
