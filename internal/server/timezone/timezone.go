// Package timezone определяет локальный час пользователя и часовой пояс по координатам.
//
// Локальный час всегда считается по базе IANA (с учётом перехода на летнее время).
// Фиксированное смещение UTC±N используется только как запасной вариант,
// когда пояс по координатам определить не удалось.
package timezone

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // база поясов встроена в бинарник

	"github.com/ringsaturn/tzf"

	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

var fixedOffsetRe = regexp.MustCompile(`^UTC([+-]\d{1,2})$`)

// Resolve превращает строку пояса в *time.Location.
//
// Поддерживаются IANA-имена ("Europe/London") и фиксированные смещения
// вида "UTC+3"/"UTC-11", которые сохранялись старой оценкой по долготе.
func Resolve(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return nil, fmt.Errorf("%w: empty", serr.ErrTimezone)
	}

	if m := fixedOffsetRe.FindStringSubmatch(tz); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil || hours < -12 || hours > 14 {
			return nil, fmt.Errorf("%w: %q", serr.ErrTimezone, tz)
		}
		return time.FixedZone(tz, hours*3600), nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", serr.ErrTimezone, tz)
	}
	return loc, nil
}

// LocalHour возвращает час суток (0..23) момента instant в поясе tz.
func LocalHour(instant time.Time, tz string) (int, error) {
	loc, err := Resolve(tz)
	if err != nil {
		return 0, err
	}
	return instant.In(loc).Hour(), nil
}

// LocalDate возвращает календарную дату момента instant в поясе loc в формате YYYY-MM-DD.
func LocalDate(instant time.Time, loc *time.Location) string {
	return instant.In(loc).Format(time.DateOnly)
}

// Finder — поиск IANA-пояса по координатам. Реализуется tzf.
type Finder interface {
	GetTimezoneName(lng, lat float64) string
}

// Estimator определяет пояс по координатам.
type Estimator struct {
	finder Finder
}

// NewEstimator создаёт Estimator поверх произвольного Finder. finder может быть nil,
// тогда всегда используется смещение по долготе.
func NewEstimator(finder Finder) *Estimator {
	return &Estimator{finder: finder}
}

// NewDefaultEstimator загружает встроенный набор границ часовых поясов tzf.
func NewDefaultEstimator() (*Estimator, error) {
	f, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("load timezone dataset: %w", err)
	}
	return NewEstimator(f), nil
}

// Estimate возвращает IANA-пояс для точки, а если набор данных ответа не дал
// (открытый океан, ошибка загрузки) — смещение UTC±N, где N = round(lon/15).
func (e *Estimator) Estimate(lat, lon float64) string {
	if e != nil && e.finder != nil {
		if name := e.finder.GetTimezoneName(lon, lat); name != "" {
			if _, err := time.LoadLocation(name); err == nil {
				return name
			}
		}
	}
	return FixedOffsetName(lon)
}

// FixedOffsetName строит "UTC±N" по долготе.
func FixedOffsetName(lon float64) string {
	offset := int(math.Round(lon / 15))
	if offset >= 0 {
		return fmt.Sprintf("UTC+%d", offset)
	}
	return fmt.Sprintf("UTC%d", offset)
}
