// Файл содержит инициализацию подключения к базе данных сервера.
//
// Выполняется:
//   - открытие соединения с PostgreSQL (через драйвер pgx);
//   - проверка доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
//
// Подключение возвращается вызывающему коду и передаётся в репозитории явно.
package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenDB открывает подключение к базе данных по настройкам DBConfig,
// проверяет его доступность и, если включено, применяет миграции.
//
// Если миграции уже применены, migrate.ErrNoChange не считается ошибкой.
func OpenDB(ctx context.Context, dbCfg DBConfig, migCfg MigrationsConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbCfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if dbCfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	if dbCfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("check db connection: %w", err)
	}

	if migCfg.Enabled {
		if err := Migrate(db, migCfg.Path); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// Migrate применяет миграции из sourceURL (например file://migrations/postgres).
func Migrate(db *sql.DB, sourceURL string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("creating migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
