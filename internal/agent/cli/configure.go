package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexmueller07/weather-stylist/internal/agent/config"
)

// NewConfigureCmd создаёт CLI-команду для сохранения локальных настроек.
//
// Заданные флаги перезаписывают соответствующие поля, остальные сохраняются
// без изменений. Ключ подписи должен совпадать с auth.signing_key сервера.
//
// Пример использования:
//
//	stylist configure --server-url https://stylist.example.com --signing-key <key>
func NewConfigureCmd(app *App) *cobra.Command {
	var in config.Credentials

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Сохранить адрес сервера и параметры токена рассылки",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.NFlag() == 0 {
				return errors.New("nothing to save: pass at least one flag")
			}
			if flags.Changed("signing-key") && len(strings.TrimSpace(in.SigningKey)) < 32 {
				return fmt.Errorf("signing key is too short (%d chars); need >= 32", len(strings.TrimSpace(in.SigningKey)))
			}

			if app.Creds == nil {
				app.Creds = &config.Credentials{}
			}
			if flags.Changed("server-url") {
				app.Creds.ServerURL = strings.TrimRight(in.ServerURL, "/")
			}
			if flags.Changed("signing-key") {
				app.Creds.SigningKey = strings.TrimSpace(in.SigningKey)
			}
			if flags.Changed("issuer") {
				app.Creds.Issuer = in.Issuer
			}
			if flags.Changed("audience") {
				app.Creds.Audience = in.Audience
			}
			if flags.Changed("token") {
				app.Creds.Token = in.Token
			}

			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "settings saved to %s\n", app.CredsPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.ServerURL, "server-url", "", "server base URL to use by default")
	cmd.Flags().StringVar(&in.SigningKey, "signing-key", "", "HS256 key shared with the server (auth.signing_key)")
	cmd.Flags().StringVar(&in.Issuer, "issuer", "", "token issuer (default weather-stylist)")
	cmd.Flags().StringVar(&in.Audience, "audience", "", "token audience (default dispatch)")
	cmd.Flags().StringVar(&in.Token, "token", "", "pre-issued dispatch token, used when no signing key is set")

	return cmd
}
