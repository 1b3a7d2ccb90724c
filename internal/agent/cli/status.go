package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexmueller07/weather-stylist/internal/shared/utils"
)

// NewStatusCmd создаёт CLI-команду просмотра подписки по email.
//
// Пример использования:
//
//	stylist status --email alex@example.com
func NewStatusCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Показать подписку по email",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Client().GetSubscriber(email)
			if err != nil {
				return err
			}

			u := resp.User
			fmt.Fprintf(cmd.OutOrStdout(),
				"email=%s\nname=%s\ntimezone=%s\ncity=%s\nactive=%t\nsince=%s\n",
				u.Email, u.FirstName, u.Timezone, utils.Deref(u.City, "-"), u.IsActive,
				u.CreatedAt.Format("2006-01-02"),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "subscriber email")
	cmd.MarkFlagRequired("email")

	return cmd
}
