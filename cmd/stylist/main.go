// Package main содержит точку входа CLI-приложения stylist.
//
// CLI играет роль внешнего таймера рассылки (команда sweep, которую запускает cron
// или systemd timer раз в час), а также позволяет подписаться, отправить
// приветственное письмо и посмотреть рекомендацию по одежде локально.
package main

import "github.com/alexmueller07/weather-stylist/internal/agent/cli"

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	// По умолчанию используется значение "dev".
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	// По умолчанию используется значение "unknown".
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
