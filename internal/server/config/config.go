// Package config отвечает за:
// - чтение server.yaml
// - подстановку переменных окружения вида ${RESEND_API_KEY}
// - проставление дефолтов
// - валидацию (чтобы сервер не стартовал с дырявыми настройками)
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/stretchr/testify/assert/yaml"
)

// Config — корневая структура всего конфига сервера.
type Config struct {
	Env        string           `yaml:"env"` // dev|stage|prod
	Server     ServerConfig     `yaml:"server"`
	TLS        TLSConfig        `yaml:"tls"`
	DB         DBConfig         `yaml:"db"`
	Migrations MigrationsConfig `yaml:"migrations"`
	Auth       AuthConfig       `yaml:"auth"`
	Weather    WeatherConfig    `yaml:"weather"`
	Mail       MailConfig       `yaml:"mail"`
	Geo        GeoConfig        `yaml:"geo"`
	Dispatch   DispatchConfig   `yaml:"dispatch"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig — настройки HTTP-сервера.
type ServerConfig struct {
	Host              string        `yaml:"host"`
	Port              int           `yaml:"port"`
	ReadTimeout       time.Duration `yaml:"read_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	// рассылка выполняется внутри запроса, поэтому таймаут записи должен её покрывать
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // время на graceful shutdown
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`   // лимит размера тела запроса
	AllowedOrigin   string        `yaml:"allowed_origin"`   // Access-Control-Allow-Origin
}

// TLSConfig — настройки HTTPS. В отличие от dev-окружения, за прокси TLS можно выключить.
type TLSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	QueryTimeout    time.Duration `yaml:"query_timeout"` // таймаут на запросы к БД
}

// MigrationsConfig — настройки миграций БД.
type MigrationsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // file://migrations/postgres
}

// AuthConfig — защита эндпоинта запуска рассылки.
//
// Внешний таймер (CLI stylist) подписывает короткоживущий JWT тем же ключом.
type AuthConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Issuer     string        `yaml:"issuer"`
	Audience   string        `yaml:"audience"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
	SigningKey string        `yaml:"signing_key"` // может содержать ${DISPATCH_SIGNING_KEY}
}

// WeatherConfig — погодный провайдер (Open-Meteo).
type WeatherConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// MailConfig — почтовый транспорт.
type MailConfig struct {
	Provider    string        `yaml:"provider"` // resend|ses
	From        string        `yaml:"from"`     // отправитель ежедневных писем
	WelcomeFrom string        `yaml:"welcome_from"`
	Timeout     time.Duration `yaml:"timeout"`
	Resend      ResendConfig  `yaml:"resend"`
	SES         SESConfig     `yaml:"ses"`
}

// ResendConfig — параметры HTTP API Resend.
type ResendConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"` // ${RESEND_API_KEY}
}

// SESConfig — параметры AWS SES. Учётные данные берутся из стандартной цепочки AWS.
type SESConfig struct {
	Region string `yaml:"region"`
}

// GeoConfig — обратное геокодирование города по координатам (Nominatim).
type GeoConfig struct {
	Enabled   bool          `yaml:"enabled"`
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DispatchConfig — параметры рассылки.
type DispatchConfig struct {
	DefaultHour int           `yaml:"default_hour"` // локальный час отправки, по умолчанию 5
	Workers     int           `yaml:"workers"`      // 1 — последовательная обработка
	UserTimeout time.Duration `yaml:"user_timeout"` // ограничение на одного пользователя
}

// LogConfig — настройки логирования (zap).
type LogConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
}

// Load читает YAML, подставляет переменные окружения вида ${VAR},
// затем парсит в структуру, проставляет дефолты и валидирует.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфиг: %w", err)
	}

	raw = []byte(ExpandEnvStrict(string(raw)))

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
	}

	ApplyDefaults(&cfg)
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// а потом Validate() упадёт с понятной ошибкой.
func ExpandEnvStrict(s string) string {
	re := regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = 1 << 20
	}
	if cfg.Server.AllowedOrigin == "" {
		cfg.Server.AllowedOrigin = "*"
	}
	if cfg.Migrations.Path == "" {
		cfg.Migrations.Path = "file://migrations/postgres"
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 5 * time.Minute
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.open-meteo.com"
	}
	if cfg.Weather.Timeout == 0 {
		cfg.Weather.Timeout = 10 * time.Second
	}
	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = "resend"
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = "Daily Weather Stylist <hello@dailyweatherstylist.com>"
	}
	if cfg.Mail.WelcomeFrom == "" {
		cfg.Mail.WelcomeFrom = cfg.Mail.From
	}
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = 10 * time.Second
	}
	if cfg.Mail.Resend.BaseURL == "" {
		cfg.Mail.Resend.BaseURL = "https://api.resend.com"
	}
	if cfg.Geo.BaseURL == "" {
		cfg.Geo.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geo.UserAgent == "" {
		cfg.Geo.UserAgent = "DailyWeatherStylist/1.0"
	}
	if cfg.Geo.Timeout == 0 {
		cfg.Geo.Timeout = 5 * time.Second
	}
	if cfg.Dispatch.DefaultHour == 0 {
		cfg.Dispatch.DefaultHour = 5
	}
	if cfg.Dispatch.Workers == 0 {
		cfg.Dispatch.Workers = 1
	}
	if cfg.Dispatch.UserTimeout == 0 {
		cfg.Dispatch.UserTimeout = 30 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate проверяет, что конфиг заполнен корректно.
// Если что-то не так — возвращаем ошибку и сервер НЕ стартует.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port некорректен: %d", c.Server.Port)
	}

	if c.TLS.Enabled && (c.TLS.CertFile == "" || c.TLS.KeyFile == "") {
		return errors.New("tls.cert_file и tls.key_file обязательны при tls.enabled=true")
	}

	if c.DB.DSN == "" {
		return errors.New("db.dsn обязателен")
	}

	if c.Auth.Enabled {
		key := strings.TrimSpace(c.Auth.SigningKey)
		if key == "" || unresolved(key) {
			return fmt.Errorf("auth.signing_key не задан или содержит неподставленную переменную: %q", key)
		}
		// Для HS256 ключ должен быть длинным и случайным
		if len(key) < 32 {
			return fmt.Errorf("auth.signing_key слишком короткий (%d символов); нужно >= 32", len(key))
		}
	}

	switch strings.ToLower(c.Mail.Provider) {
	case "resend":
		if key := strings.TrimSpace(c.Mail.Resend.APIKey); key == "" || unresolved(key) {
			return errors.New("mail.resend.api_key обязателен (через ${RESEND_API_KEY})")
		}
	case "ses":
		if c.Mail.SES.Region == "" {
			return errors.New("mail.ses.region обязателен для provider=ses")
		}
	default:
		return fmt.Errorf("mail.provider должен быть resend|ses (сейчас %q)", c.Mail.Provider)
	}

	if c.Dispatch.DefaultHour < 0 || c.Dispatch.DefaultHour > 23 {
		return fmt.Errorf("dispatch.default_hour должен быть 0..23 (сейчас %d)", c.Dispatch.DefaultHour)
	}
	if c.Dispatch.Workers < 1 {
		return fmt.Errorf("dispatch.workers должен быть >= 1 (сейчас %d)", c.Dispatch.Workers)
	}

	return nil
}

// ApplyEnvOverrides даёт возможность переопределять некоторые настройки
// через переменные окружения без ${...} в yaml.
// Например SERVER_PORT=9090 переопределит server.port.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DB.DSN = v
	}
}

// unresolved — ${VAR} не подставился, значит переменная окружения не задана.
func unresolved(s string) bool {
	return strings.Contains(s, "${") && strings.Contains(s, "}")
}
