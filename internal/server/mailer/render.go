package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Content — тема и HTML-тело письма.
type Content struct {
	Subject string
	HTML    string
}

// DailyEmail — данные ежедневного письма.
type DailyEmail struct {
	FirstName   string
	City        string // пустой город выводится как "your area"
	Comparison  string
	Description string
	HighF       int
	LowF        int
	Outfit      string
	Reason      string
}

// RenderDaily собирает ежедневное письмо с погодой и рекомендацией.
func RenderDaily(d DailyEmail) (Content, error) {
	html, err := execute("daily", d)
	if err != nil {
		return Content{}, err
	}
	return Content{
		Subject: fmt.Sprintf("Good Morning, %s! ☀️", d.FirstName),
		HTML:    html,
	}, nil
}

type welcomeData struct {
	FirstName string
	SendTime  string
}

// RenderWelcome собирает приветственное письмо. hour — локальный час ежедневной рассылки.
func RenderWelcome(firstName string, hour int) (Content, error) {
	html, err := execute("welcome", welcomeData{FirstName: firstName, SendTime: ClockLabel(hour)})
	if err != nil {
		return Content{}, err
	}
	return Content{
		Subject: fmt.Sprintf("Welcome to Daily Weather Stylist, %s! 🌤️", firstName),
		HTML:    html,
	}, nil
}

// ClockLabel форматирует час в 12-часовом виде: 5 -> "5:00 AM", 0 -> "12:00 AM", 17 -> "5:00 PM".
func ClockLabel(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:00 %s", h, suffix)
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", name, err)
	}
	return buf.String(), nil
}
