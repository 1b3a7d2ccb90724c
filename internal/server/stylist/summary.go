package stylist

import (
	"fmt"
	"math"

	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

// NoonIndex — индекс часа, код которого считается погодой дня.
const NoonIndex = 12

// DailySummary — сводка дня для письма.
type DailySummary struct {
	HighF       int
	LowF        int
	Code        int
	Description string
}

// CelsiusToFahrenheit переводит °C в °F.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// Summarize считает максимум и минимум дня по почасовому ряду °C,
// переводит их в °F с округлением и выбирает код погоды на полдень
// (или на первый час, если ряд короче).
//
// Пропуски в ряду (NaN) игнорируются; ряд без значений — ErrInvalidInput.
func Summarize(tempsC []float64, codes []int) (DailySummary, error) {
	high, low := math.Inf(-1), math.Inf(1)
	for _, t := range tempsC {
		if math.IsNaN(t) {
			continue
		}
		high = math.Max(high, t)
		low = math.Min(low, t)
	}
	if math.IsInf(high, -1) {
		return DailySummary{}, fmt.Errorf("%w: empty temperature series", serr.ErrInvalidInput)
	}

	code := 0
	switch {
	case len(codes) > NoonIndex:
		code = codes[NoonIndex]
	case len(codes) > 0:
		code = codes[0]
	}

	return DailySummary{
		HighF:       int(math.Round(CelsiusToFahrenheit(high))),
		LowF:        int(math.Round(CelsiusToFahrenheit(low))),
		Code:        code,
		Description: Describe(code),
	}, nil
}

// Compare формирует фразу сравнения с вчерашним максимумом.
// Разница до 2°F включительно считается «примерно так же».
func Compare(todayHighF, yesterdayHighF int) string {
	switch {
	case todayHighF > yesterdayHighF+2:
		return "Today will be warmer than yesterday."
	case todayHighF < yesterdayHighF-2:
		return "Today will be colder than yesterday."
	default:
		return "Today will be about the same as yesterday."
	}
}
