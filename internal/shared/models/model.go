// Package models содержит плоские модели HTTP API, общие для сервера и CLI.
package models

import "time"

// SubscribeRequest — тело запроса формы подписки.
//
// Используется в:
//
//	POST /users
//
// Поля:
//   - FirstName/Email обязательны
//   - Latitude/Longitude — координаты, выбранные на карте
//   - Timezone — IANA-имя; если пустое или неизвестное, сервер оценит пояс по координатам
//   - City — опционально; если пустое, сервер попробует обратное геокодирование
type SubscribeRequest struct {
	FirstName string  `json:"firstName"`
	Email     string  `json:"email"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
	City      *string `json:"city,omitempty"`
}

// Subscriber — публичное представление подписчика.
type Subscriber struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	Email     string    `json:"email"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timezone  string    `json:"timezone"`
	City      *string   `json:"city,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubscribeResponse — ответ на успешную подписку.
type SubscribeResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    Subscriber `json:"user"`
}

// ConfirmationRequest — запрос на отправку приветственного письма.
//
// Используется в:
//
//	POST /confirmation
type ConfirmationRequest struct {
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

// ConfirmationResponse — ответ на отправку приветственного письма.
type ConfirmationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"emailId"`
}

// DispatchData — итоги одной рассылки.
type DispatchData struct {
	Processed  int `json:"processed"`
	Errors     int `json:"errors"`
	TotalUsers int `json:"totalUsers"`
}

// DispatchResponse — ответ эндпоинта запуска рассылки.
//
// Используется в:
//
//	GET|POST /dispatch?hour=N
type DispatchResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Data      DispatchData `json:"data"`
	Timestamp time.Time    `json:"timestamp"`
}

// ErrorResponse — стандартный формат ошибки API.
//
// Timestamp заполняется только эндпоинтом рассылки.
type ErrorResponse struct {
	Success   bool       `json:"success"`
	Error     string     `json:"error"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
