package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
	"github.com/alexmueller07/weather-stylist/internal/shared/models"
)

const missingConfirmationFields = "Missing firstName or email"

// SendConfirmation отправляет приветственное письмо.
//
// @Summary      Send confirmation email
// @Description  Sends the welcome email to a freshly subscribed user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.ConfirmationRequest true "Recipient"
// @Success      200 {object} models.ConfirmationResponse
// @Failure      400 {object} models.ErrorResponse "Missing firstName or email"
// @Failure      502 {object} models.ErrorResponse "Email provider error"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /confirmation [post]
func (h *Handler) SendConfirmation(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	id, err := h.Svc.Confirmation.Send(r.Context(), req.FirstName, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, missingConfirmationFields)
		case errors.Is(err, serr.ErrUpstream):
			h.Log.Warn("confirmation email failed", zap.String("email", req.Email), zap.Error(err))
			WriteError(w, http.StatusBadGateway, err.Error())
		default:
			h.Log.Error("confirmation failed", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.ConfirmationResponse{
		Success: true,
		Message: "Email sent successfully",
		EmailID: id,
	})
}
