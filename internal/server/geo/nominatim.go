// Package geo определяет название населённого пункта по координатам
// через обратное геокодирование Nominatim (OpenStreetMap).
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	serr "github.com/alexmueller07/weather-stylist/internal/shared/errors"
)

// Nominatim — клиент reverse-геокодера.
type Nominatim struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewNominatim создаёт клиент. Политика Nominatim требует осмысленный User-Agent.
func NewNominatim(baseURL, userAgent string, timeout time.Duration) *Nominatim {
	return &Nominatim{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Hamlet  string `json:"hamlet"`
		State   string `json:"state"`
	} `json:"address"`
}

// City возвращает ближайшее название места: city, town, village, hamlet или state.
// Если ни одно поле не заполнено, возвращается пустая строка без ошибки.
func (n *Nominatim) City(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", n.userAgent)

	res, err := n.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: nominatim: %v", serr.ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("%w: nominatim: %s", serr.ErrUpstream, res.Status)
	}

	var body reverseResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: nominatim: decode: %v", serr.ErrUpstream, err)
	}

	a := body.Address
	for _, name := range []string{a.City, a.Town, a.Village, a.Hamlet, a.State} {
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
	}
	return "", nil
}
