package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-services-marketplace/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	defaultGeocodeURL  = "https://maps.googleapis.com/maps/api/geocode/json"
	geocodeCacheTTL    = 30 * 24 * time.Hour
	geocodeCachePrefix = "geocode:addr:"
	geocodeHTTPTimeout = 8 * time.Second
)

// Coordinates is a latitude/longitude pair. Display-only in this system.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodeProvider resolves a free-form address to coordinates.
type GeocodeProvider interface {
	Geocode(ctx context.Context, address string) (*Coordinates, error)
}

// GeocodeCache is the cache-aside store for geocode results. A miss is
// reported as (value="", ok=false), never as an error.
type GeocodeCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// RedisGeocodeCache backs GeocodeCache with Redis. Cache failures are
// logged and ignored; the upstream call proceeds either way.
type RedisGeocodeCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisGeocodeCache(client *redis.Client, log *logrus.Logger) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, log: log}
}

func (c *RedisGeocodeCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Geocode cache read failed: %+v", err)
		}
		return "", false
	}
	return value, true
}

func (c *RedisGeocodeCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warnf("Geocode cache write failed: %+v", err)
	}
}

// HTTPGeocodeClient implements GeocodeProvider against a Google-style
// geocoding endpoint, with cached lookups keyed by normalized address.
type HTTPGeocodeClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      GeocodeCache
	log        *logrus.Logger
}

func NewHTTPGeocodeClient(cfg config.GeocodeConfig, cache GeocodeCache, log *logrus.Logger) *HTTPGeocodeClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeocodeURL
	}
	return &HTTPGeocodeClient{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: geocodeHTTPTimeout},
		cache:      cache,
		log:        log,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *HTTPGeocodeClient) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	normalized := strings.ToLower(strings.TrimSpace(address))
	cacheKey := geocodeCachePrefix + normalized

	if c.cache != nil {
		if cached, ok := c.cache.Get(ctx, cacheKey); ok {
			var coords Coordinates
			if err := json.Unmarshal([]byte(cached), &coords); err == nil {
				return &coords, nil
			}
		}
	}

	query := url.Values{}
	query.Set("address", address)
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocode response decode failed: %w", err)
	}

	switch body.Status {
	case "OK":
	case "REQUEST_DENIED":
		return nil, ErrGeocodeDenied
	case "ZERO_RESULTS":
		return nil, ErrAddressNotFound
	default:
		return nil, fmt.Errorf("geocode upstream status %q", body.Status)
	}

	if len(body.Results) == 0 {
		return nil, ErrAddressNotFound
	}

	coords := &Coordinates{
		Latitude:  body.Results[0].Geometry.Location.Lat,
		Longitude: body.Results[0].Geometry.Location.Lng,
	}

	if c.cache != nil {
		if payload, err := json.Marshal(coords); err == nil {
			c.cache.Set(ctx, cacheKey, string(payload), geocodeCacheTTL)
		}
	}

	return coords, nil
}
