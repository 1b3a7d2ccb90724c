package stylist

// Recommendation — подобранный наряд и пояснение к нему.
type Recommendation struct {
	Outfit string `json:"outfit"`
	Reason string `json:"reason"`
}

// band — температурный диапазон по дневному максимуму.
//
// Диапазон применяется при high >= min; layer добавляется к наряду,
// если ночной минимум опускается ниже layerBelow.
type band struct {
	min        float64
	outfit     string
	reason     string
	layer      string
	layerBelow float64
}

// диапазоны идут по убыванию, последний ловит всё остальное (в том числе NaN)
var bands = []band{
	{
		min:    90,
		outfit: "very light shorts, a tank top, and sandals",
		reason: "It's extremely hot today, so wear the coolest clothes you have",
	},
	{
		min:    80,
		outfit: "light shorts, a breathable t-shirt, and sneakers or sandals",
		reason: "It's hot today, so stay cool and comfortable",
	},
	{
		min:        70,
		outfit:     "comfortable pants or shorts with a light shirt or blouse",
		reason:     "Warm weather, dress for comfort",
		layer:      " (bring a light jacket for the evening)",
		layerBelow: 60,
	},
	{
		min:        60,
		outfit:     "jeans or pants with a sweater or light jacket",
		reason:     "Mild temperatures, layers are a good idea",
		layer:      " (bring a medium jacket for later)",
		layerBelow: 50,
	},
	{
		min:    45,
		outfit: "warm pants, a sweater, and a medium jacket",
		reason: "Chilly weather, bundle up a bit",
	},
	{
		min:    30,
		outfit: "warm layers, a heavy coat, scarf, and gloves",
		reason: "Cold weather ahead - stay warm and cozy",
	},
}

var coldest = band{
	outfit: "your warmest winter gear, including thermal layers, heavy coat, hat, scarf, and insulated boots",
	reason: "It's freezing out there - dress for extreme cold",
}

const (
	// выше этого максимума дождь считаем маловероятным
	rainCeilingF = 80
	// снег учитываем только когда достаточно холодно
	snowCeilingF = 40
)

// Recommend подбирает одежду по максимуму и минимуму дня (°F) и погодному коду.
//
// Функция тотальна: любые входные данные дают результат.
// Срабатывает не более одного погодного модификатора: дождь, затем снег, затем облачность.
func Recommend(highF, lowF float64, code int) Recommendation {
	b := pickBand(highF)

	outfit := b.outfit
	reason := b.reason
	if b.layer != "" && lowF < b.layerBelow {
		outfit += b.layer
	}

	switch cat := Classify(code); {
	case cat == CategoryRainy && highF < rainCeilingF:
		outfit += " with a waterproof jacket or umbrella"
		reason += " with rain protection"
	case cat == CategorySnowy && highF < snowCeilingF:
		outfit += " with waterproof boots and extra warm layers"
		reason += " and snow gear"
	case cat == CategoryCloudy:
		outfit += " (and maybe bring a light jacket just in case)"
		reason += " with cloud cover"
	}

	return Recommendation{Outfit: outfit, Reason: reason}
}

func pickBand(highF float64) band {
	for _, b := range bands {
		if highF >= b.min {
			return b
		}
	}
	return coldest
}
