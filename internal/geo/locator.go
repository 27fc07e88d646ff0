// Package geo определяет примерное местоположение пользователя по IP.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	SourceLookup  = "lookup"
	SourceCache   = "cache"
	SourceDefault = "default"
)

// Location - координаты для центрирования карты
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source"`
}

// Options - параметры Locator
type Options struct {
	Endpoint   string
	Timeout    time.Duration
	CacheTTL   time.Duration
	DefaultLat float64
	DefaultLng float64
}

// Locator ищет координаты во внешнем сервисе. Любая ошибка дает координаты по умолчанию.
type Locator struct {
	endpoint   string
	httpClient *http.Client
	cache      Cache
	ttl        time.Duration
	fallback   Location
	logger     *logrus.Logger
}

// NewLocator создает Locator. cache может быть nil.
func NewLocator(opts Options, cache Cache, logger *logrus.Logger) *Locator {
	return &Locator{
		endpoint: strings.TrimRight(opts.Endpoint, "/"),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		cache:  cache,
		ttl:    opts.CacheTTL,
		logger: logger,
		fallback: Location{
			Latitude:  opts.DefaultLat,
			Longitude: opts.DefaultLng,
			Source:    SourceDefault,
		},
	}
}

// ipinfoResponse - ответ ipinfo.io, поле loc имеет вид "lat,lng"
type ipinfoResponse struct {
	Loc string `json:"loc"`
}

// Locate возвращает координаты для ip. Пустой или локальный адрес означает собственный адрес сервера.
func (l *Locator) Locate(ctx context.Context, ip string) Location {
	log := l.logger.WithFields(logrus.Fields{
		"service": "geo",
		"method":  "Locate",
		"ip":      ip,
	})

	if l.endpoint == "" {
		return l.fallback
	}

	key := cacheKey(ip)
	if l.cache != nil {
		loc, ok, err := l.cache.Get(ctx, key)
		if err != nil {
			log.WithError(err).Warn("Failed to read location from cache")
		} else if ok {
			loc.Source = SourceCache
			return loc
		}
	}

	loc, err := l.lookup(ctx, ip)
	if err != nil {
		log.WithError(err).Warn("Location lookup failed, using default")
		return l.fallback
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, key, loc, l.ttl); err != nil {
			log.WithError(err).Warn("Failed to cache location")
		}
	}
	return loc
}

func (l *Locator) lookup(ctx context.Context, ip string) (Location, error) {
	url := l.endpoint + "/json"
	if isPublic(ip) {
		url = l.endpoint + "/" + ip + "/json"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Location{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body ipinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, fmt.Errorf("decode response: %w", err)
	}
	return parseLoc(body.Loc)
}

func parseLoc(raw string) (Location, error) {
	latRaw, lngRaw, ok := strings.Cut(raw, ",")
	if !ok {
		return Location{}, fmt.Errorf("malformed loc %q", raw)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil || lat < -90 || lat > 90 {
		return Location{}, fmt.Errorf("malformed latitude in %q", raw)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil || lng < -180 || lng > 180 {
		return Location{}, fmt.Errorf("malformed longitude in %q", raw)
	}
	return Location{Latitude: lat, Longitude: lng, Source: SourceLookup}, nil
}

func isPublic(ip string) bool {
	addr := net.ParseIP(ip)
	if addr == nil {
		return false
	}
	return !(addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() || addr.IsLinkLocalUnicast())
}

func cacheKey(ip string) string {
	if !isPublic(ip) {
		return "geo:ip:self"
	}
	return "geo:ip:" + ip
}
