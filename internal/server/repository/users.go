// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"

	"github.com/alexmueller07/weather-stylist/internal/server/models"
	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

const userColumns = `id, first_name, email, latitude, longitude, timezone, city, is_active, created_at`

// UsersRepository отвечает за хранение подписчиков.
type UsersRepository struct {
	db *sql.DB
}

// NewUsersRepository создает новый UsersRepository.
func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create вставляет подписчика одной условной командой.
//
// Уникальность email обеспечивает constraint users_email_key:
// при конфликте строка не возвращается и метод отдаёт ErrAlreadyExists,
// без предварительного SELECT по email.
func (r *UsersRepository) Create(ctx context.Context, u models.NewUser) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO users (first_name, email, latitude, longitude, timezone, city, is_active)
		 VALUES ($1,$2,$3,$4,$5,$6,TRUE)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING `+userColumns,
		u.FirstName, u.Email, u.Latitude, u.Longitude, u.Timezone, u.City,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrAlreadyExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return models.User{}, serr.ErrAlreadyExists
		}
		return models.User{}, serr.ErrInternal
	}
	return user, nil
}

// GetByEmail возвращает подписчика по email или ErrNotFound.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`,
		email,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}
	return user, nil
}

// ListActive возвращает всех активных подписчиков в порядке регистрации.
func (r *UsersRepository) ListActive(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+`
		   FROM users
		  WHERE is_active = TRUE
		  ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return users, nil
}

// Ping проверяет доступность БД для health-check.
func (r *UsersRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return serr.ErrInternal
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (models.User, error) {
	var (
		u    models.User
		city sql.NullString
	)
	if err := s.Scan(&u.ID, &u.FirstName, &u.Email, &u.Latitude, &u.Longitude,
		&u.Timezone, &city, &u.IsActive, &u.CreatedAt); err != nil {
		return models.User{}, err
	}
	if city.Valid {
		c := city.String
		u.City = &c
	}
	return u, nil
}
