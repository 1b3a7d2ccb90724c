// Package cli реализует командный интерфейс (CLI) клиентского приложения stylist.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных настроек (адрес сервера, ключ подписи) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexmueller07/weather-stylist/internal/agent/api"
	"github.com/alexmueller07/weather-stylist/internal/agent/config"
	"github.com/alexmueller07/weather-stylist/internal/server/crypto"
)

// DefaultServerURL — адрес сервера, если он не задан ни флагом, ни в конфиге.
const DefaultServerURL = "http://127.0.0.1:8080"

// SigningKeyEnv — переменная окружения с ключом подписи; имеет приоритет над конфигом.
const SigningKeyEnv = "DISPATCH_SIGNING_KEY"

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://127.0.0.1:8080").
	ServerURL string
	// Insecure отключает проверку TLS сертификата сервера.
	Insecure bool
	// Timeout — таймаут одного HTTP-запроса.
	Timeout time.Duration

	// CredsPath — путь к файлу с сохранёнными настройками.
	CredsPath string
	// Creds — загруженные настройки из файла конфигурации.
	Creds *config.Credentials
}

// Client создаёт API-клиент с текущими настройками приложения.
func (a *App) Client() *api.Client {
	return NewAPIClient(a.ServerURL, a.Timeout, a.Insecure)
}

// DispatchToken возвращает токен для запуска рассылки.
//
// Если ключ подписи известен (переменная окружения или конфиг), выпускается новый
// токен на ttl. Иначе используется сохранённый токен; пустая строка допустима
// для сервера с выключенной авторизацией.
func (a *App) DispatchToken(ttl time.Duration) (string, error) {
	creds := a.Creds
	if creds == nil {
		creds = &config.Credentials{}
	}

	key := strings.TrimSpace(os.Getenv(SigningKeyEnv))
	if key == "" {
		key = creds.SigningKey
	}
	if key == "" {
		return creds.Token, nil
	}

	return NewDispatchToken(crypto.JWTConfig{
		Issuer:     creds.IssuerOrDefault(),
		Audience:   creds.AudienceOrDefault(),
		SigningKey: key,
		TTL:        ttl,
	})
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE загружаются сохранённые настройки; адрес сервера из конфига
// применяется, только если флаг --server не задан явно.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: DefaultServerURL,
	}

	cmd := &cobra.Command{
		Use:   "stylist",
		Short: "Daily Weather Stylist CLI — подписки и запуск ежедневной рассылки",
		Long: `Daily Weather Stylist CLI.

Команды:
  configure  Сохранить адрес сервера и ключ подписи
  sweep      Запустить рассылку для пользователей с нужным локальным часом
  subscribe  Подписать пользователя
  confirm    Отправить приветственное письмо
  status     Показать подписку по email
  recommend  Подобрать одежду локально, без сервера
  token      Выпустить токен запуска рассылки
  version    Версия и дата сборки

Примеры:

Настройка:
  stylist configure --server-url https://stylist.example.com --signing-key <key>

Ежечасный запуск из cron:
  0 * * * * stylist sweep --hour 5

Подписка:
  stylist subscribe --first-name Alex --email alex@example.com --lat 51.5 --lon -0.12

Рекомендация:
  stylist recommend --high 72 --low 55 --code 2
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds

			if !cmd.Flags().Changed("server") && creds.ServerURL != "" {
				app.ServerURL = creds.ServerURL
			}
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL")
	cmd.PersistentFlags().BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", api.DefaultTimeout, "request timeout")

	cmd.AddCommand(NewConfigureCmd(app))
	cmd.AddCommand(NewSweepCmd(app))
	cmd.AddCommand(NewSubscribeCmd(app))
	cmd.AddCommand(NewConfirmCmd(app))
	cmd.AddCommand(NewStatusCmd(app))
	cmd.AddCommand(NewRecommendCmd())
	cmd.AddCommand(NewTokenCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
