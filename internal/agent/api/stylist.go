package api

import (
	"fmt"
	"net/url"

	"github.com/alexmueller07/weather-stylist/internal/shared/models"
)

// Subscribe регистрирует подписчика.
//
// Эндпоинт: POST /users
func (c *Client) Subscribe(req models.SubscribeRequest) (*models.SubscribeResponse, error) {
	var resp models.SubscribeResponse
	if err := c.PostJSON("/users", req, &resp, ""); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSubscriber возвращает подписчика по email.
//
// Эндпоинт: GET /users/{email}
func (c *Client) GetSubscriber(email string) (*models.SubscribeResponse, error) {
	var resp models.SubscribeResponse
	if err := c.GetJSON("/users/"+url.PathEscape(email), &resp, ""); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Confirm отправляет приветственное письмо.
//
// Эндпоинт: POST /confirmation
func (c *Client) Confirm(firstName, email string) (*models.ConfirmationResponse, error) {
	req := models.ConfirmationRequest{FirstName: firstName, Email: email}

	var resp models.ConfirmationResponse
	if err := c.PostJSON("/confirmation", req, &resp, ""); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Dispatch запускает рассылку для пользователей, у которых сейчас локальный час hour.
//
// Эндпоинт: POST /dispatch?hour=N. token пустой, если на сервере auth выключен.
func (c *Client) Dispatch(hour int, token string) (*models.DispatchResponse, error) {
	var resp models.DispatchResponse
	if err := c.PostJSON(fmt.Sprintf("/dispatch?hour=%d", hour), nil, &resp, token); err != nil {
		return nil, err
	}
	return &resp, nil
}
