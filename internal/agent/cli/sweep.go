package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexmueller07/weather-stylist/internal/agent/config"
)

// NewSweepCmd создаёт CLI-команду запуска ежедневной рассылки.
//
// Команда предназначена для внешнего таймера: её вызывают раз в час,
// а сервер сам отбирает пользователей, у которых сейчас локальный час --hour.
//
// Пример использования:
//
//	stylist sweep --hour 5
func NewSweepCmd(app *App) *cobra.Command {
	var (
		hour int
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Запустить рассылку для пользователей с локальным часом --hour",
		RunE: func(cmd *cobra.Command, args []string) error {
			if hour < 0 || hour > 23 {
				return fmt.Errorf("hour must be 0..23, got %d", hour)
			}

			token, err := app.DispatchToken(ttl)
			if err != nil {
				return err
			}

			resp, err := app.Client().Dispatch(hour, token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "processed=%d errors=%d total=%d\n",
				resp.Data.Processed, resp.Data.Errors, resp.Data.TotalUsers)
			return nil
		},
	}

	cmd.Flags().IntVar(&hour, "hour", 5, "local hour (0..23) to deliver at")
	cmd.Flags().DurationVar(&ttl, "ttl", config.DefaultTokenTTL, "lifetime of the minted dispatch token")

	return cmd
}
