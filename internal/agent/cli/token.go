package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexmueller07/weather-stylist/internal/agent/config"
)

// NewTokenCmd создаёт CLI-команду выпуска токена запуска рассылки.
//
// Токен подходит для внешних планировщиков, которые вызывают
// GET|POST /dispatch напрямую, без CLI.
//
// Пример использования:
//
//	curl -H "Authorization: Bearer $(stylist token --ttl 2m)" -X POST "$URL/dispatch?hour=5"
func NewTokenCmd(app *App) *cobra.Command {
	var ttl = config.DefaultTokenTTL

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Выпустить подписанный токен запуска рассылки",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive, got %s", ttl)
			}

			token, err := app.DispatchToken(ttl)
			if err != nil {
				return err
			}
			if token == "" {
				return errors.New("no signing key: run `stylist configure --signing-key` or set " + SigningKeyEnv)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", ttl, "token lifetime")

	return cmd
}
