// Package config содержит функции для работы с локальной конфигурацией CLI-клиента.
//
// Конфигурация хранит адрес сервера и параметры подписи токена запуска рассылки.
// Файл размещается в домашней директории пользователя:
//
//	~/.weather-stylist/credentials.json
//
// Пакет предоставляет функции для получения пути по умолчанию, загрузки и сохранения
// конфигурации в JSON формате.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Значения по умолчанию совпадают с секцией auth в configs/server.yaml.
const (
	DefaultIssuer   = "weather-stylist"
	DefaultAudience = "dispatch"
	DefaultTokenTTL = 5 * time.Minute
)

// Credentials содержит настройки, используемые CLI-клиентом.
//
// SigningKey — общий с сервером ключ HS256 (auth.signing_key).
// Token — заранее выпущенный токен; используется, если ключ не задан.
type Credentials struct {
	ServerURL  string `json:"server_url,omitempty"`
	SigningKey string `json:"signing_key,omitempty"`
	Issuer     string `json:"issuer,omitempty"`
	Audience   string `json:"audience,omitempty"`
	Token      string `json:"token,omitempty"`
}

// IssuerOrDefault возвращает issuer или DefaultIssuer.
func (c *Credentials) IssuerOrDefault() string {
	if c.Issuer == "" {
		return DefaultIssuer
	}
	return c.Issuer
}

// AudienceOrDefault возвращает audience или DefaultAudience.
func (c *Credentials) AudienceOrDefault() string {
	if c.Audience == "" {
		return DefaultAudience
	}
	return c.Audience
}

// DefaultPath возвращает путь к конфигурационному файлу в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.weather-stylist/credentials.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".weather-stylist", "credentials.json"), nil
}

// Load загружает конфигурацию из указанного файла.
//
// Если файл не существует, возвращает пустую конфигурацию без ошибки.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку.
func Load(path string) (*Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// дефолтный конфиг, если файла нет
			return &Credentials{}, nil
		}
		return nil, err
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save сохраняет конфигурацию в указанный файл в JSON формате.
//
// При необходимости создаёт директорию назначения с правами 0700.
// Файл конфигурации записывается с правами 0600, так как содержит ключ подписи.
func Save(path string, c *Credentials) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
