package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfirmCmd создаёт CLI-команду отправки приветственного письма.
//
// Пример использования:
//
//	stylist confirm --first-name Sam --email sam@example.com
func NewConfirmCmd(app *App) *cobra.Command {
	var firstName, email string

	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Отправить приветственное письмо",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Client().Confirm(firstName, email)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "email sent (id=%s)\n", resp.EmailID)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "recipient first name")
	cmd.Flags().StringVar(&email, "email", "", "recipient email")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("email")

	return cmd
}
