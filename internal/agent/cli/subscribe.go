package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexmueller07/weather-stylist/internal/shared/models"
	"github.com/alexmueller07/weather-stylist/internal/shared/utils"
)

// NewSubscribeCmd создаёт CLI-команду подписки пользователя.
//
// Часовой пояс и город необязательны: сервер оценит их по координатам.
//
// Пример использования:
//
//	stylist subscribe --first-name Alex --email alex@example.com --lat 51.5 --lon -0.12
func NewSubscribeCmd(app *App) *cobra.Command {
	var (
		req  models.SubscribeRequest
		city string
	)

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Подписать пользователя на ежедневное письмо",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.City = utils.StrPtr(city)

			resp, err := app.Client().Subscribe(req)
			if err != nil {
				return err
			}

			u := resp.User
			fmt.Fprintf(cmd.OutOrStdout(), "subscribed %s (id=%s timezone=%s city=%s)\n",
				u.Email, u.ID, u.Timezone, utils.Deref(u.City, "-"))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "subscriber first name")
	cmd.Flags().StringVar(&req.Email, "email", "", "subscriber email")
	cmd.Flags().Float64Var(&req.Latitude, "lat", 0, "latitude, -90..90")
	cmd.Flags().Float64Var(&req.Longitude, "lon", 0, "longitude, -180..180")
	cmd.Flags().StringVar(&req.Timezone, "timezone", "", "IANA timezone (estimated from coordinates if empty)")
	cmd.Flags().StringVar(&city, "city", "", "city name (reverse geocoded if empty)")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lon")

	return cmd
}
