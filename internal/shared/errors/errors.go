// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service, repository и клиентах внешних сервисов
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (email уже подписан)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// внешние сервисы и часовые пояса
var (
	// погодный провайдер, почтовый сервис или геокодер ответили ошибкой
	ErrUpstream = errors.New("upstream service error")
	// часовой пояс не удалось разрешить
	ErrTimezone = errors.New("unknown timezone")
)
