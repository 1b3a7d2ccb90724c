package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/alexmueller07/weather-stylist/internal/server/stylist"
)

// NewRecommendCmd создаёт CLI-команду локального подбора одежды.
//
// Сервер не вызывается: используются те же правила, что и в ежедневном письме.
// Температуры задаются в °F, либо в °C с флагом --celsius.
//
// Пример использования:
//
//	stylist recommend --high 72 --low 55 --code 2 --yesterday 68
func NewRecommendCmd() *cobra.Command {
	var (
		high, low, yesterday float64
		code                 int
		celsius              bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Подобрать одежду по прогнозу без обращения к серверу",
		RunE: func(cmd *cobra.Command, args []string) error {
			if celsius {
				high = stylist.CelsiusToFahrenheit(high)
				low = stylist.CelsiusToFahrenheit(low)
				yesterday = stylist.CelsiusToFahrenheit(yesterday)
			}

			highF := math.Round(high)
			lowF := math.Round(low)
			rec := stylist.Recommend(highF, lowF, code)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "High/Low: %.0f°F / %.0f°F\n", highF, lowF)
			fmt.Fprintf(out, "Conditions: %s\n", stylist.Describe(code))
			if cmd.Flags().Changed("yesterday") {
				fmt.Fprintln(out, stylist.Compare(int(highF), int(math.Round(yesterday))))
			}
			fmt.Fprintf(out, "Outfit: %s\n", rec.Outfit)
			fmt.Fprintf(out, "Why: %s\n", rec.Reason)
			return nil
		},
	}

	cmd.Flags().Float64Var(&high, "high", 0, "today's high temperature")
	cmd.Flags().Float64Var(&low, "low", 0, "today's low temperature")
	cmd.Flags().Float64Var(&yesterday, "yesterday", 0, "yesterday's high temperature, enables the comparison line")
	cmd.Flags().IntVar(&code, "code", 0, "WMO weather code at noon")
	cmd.Flags().BoolVar(&celsius, "celsius", false, "temperatures are in °C")
	cmd.MarkFlagRequired("high")
	cmd.MarkFlagRequired("low")

	return cmd
}
