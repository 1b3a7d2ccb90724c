// Серверная модель подписчика
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — подписчик ежедневной рассылки.
//
// Email уникален на уровне БД. IsActive меняется только внешним процессом отписки.
type User struct {
	ID        uuid.UUID
	FirstName string
	Email     string
	Latitude  float64
	Longitude float64
	Timezone  string // IANA-имя или UTC±N
	City      *string
	IsActive  bool
	CreatedAt time.Time
}

// NewUser — данные для вставки нового подписчика.
type NewUser struct {
	FirstName string
	Email     string
	Latitude  float64
	Longitude float64
	Timezone  string
	City      *string
}
