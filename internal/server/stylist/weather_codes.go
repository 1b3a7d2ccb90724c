// Package stylist содержит правила рассылки: классификацию погодных кодов WMO,
// подбор одежды по температуре и сводку прогноза на день.
//
// Все функции пакета чистые и не делают I/O.
package stylist

// Category — класс погодного кода, влияющий на рекомендацию.
type Category int

const (
	// CategoryClear — ясно и всё прочее, модификатора нет.
	CategoryClear Category = iota
	CategoryCloudy
	CategoryRainy
	CategorySnowy
)

func (c Category) String() string {
	switch c {
	case CategoryCloudy:
		return "cloudy"
	case CategoryRainy:
		return "rainy"
	case CategorySnowy:
		return "snowy"
	default:
		return "clear"
	}
}

// UnknownDescription — описание для кодов вне таблицы.
const UnknownDescription = "mixed conditions"

var descriptions = map[int]string{
	0:  "clear and sunny",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "foggy",
	48: "foggy with rime",
	51: "light drizzle",
	53: "moderate drizzle",
	55: "dense drizzle",
	61: "slight rain",
	63: "moderate rain",
	65: "heavy rain",
	71: "slight snow",
	73: "moderate snow",
	75: "heavy snow",
	80: "light rain showers",
	81: "moderate rain showers",
	82: "heavy rain showers",
	95: "thunderstorm",
	96: "thunderstorm with hail",
	99: "severe thunderstorm with hail",
}

// Classify относит код к категории. Границы включительные:
// rainy 61..67, snowy 71..77, cloudy 2..3.
func Classify(code int) Category {
	switch {
	case code >= 61 && code <= 67:
		return CategoryRainy
	case code >= 71 && code <= 77:
		return CategorySnowy
	case code >= 2 && code <= 3:
		return CategoryCloudy
	default:
		return CategoryClear
	}
}

// Describe возвращает человекочитаемое описание кода.
func Describe(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return UnknownDescription
}
