package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-services-marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryGeocodeCache struct {
	entries map[string]string
}

func newMemoryGeocodeCache() *memoryGeocodeCache {
	return &memoryGeocodeCache{entries: map[string]string{}}
}

func (c *memoryGeocodeCache) Get(ctx context.Context, key string) (string, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *memoryGeocodeCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	c.entries[key] = value
}

func geocodeTestServer(t *testing.T, body string, hits *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHTTPGeocodeClient_ResolvesCoordinates(t *testing.T) {
	server := geocodeTestServer(t, `{
		"status": "OK",
		"results": [{"geometry": {"location": {"lat": -23.5505, "lng": -46.6333}}}]
	}`, nil)

	client := NewHTTPGeocodeClient(config.GeocodeConfig{BaseURL: server.URL, APIKey: "test-key"}, nil, newTestLogger())

	coords, err := client.Geocode(context.Background(), "Av. Paulista 1000, Sao Paulo")

	require.NoError(t, err)
	assert.InDelta(t, -23.5505, coords.Latitude, 0.0001)
	assert.InDelta(t, -46.6333, coords.Longitude, 0.0001)
}

func TestHTTPGeocodeClient_SecondLookupServedFromCache(t *testing.T) {
	hits := 0
	server := geocodeTestServer(t, `{
		"status": "OK",
		"results": [{"geometry": {"location": {"lat": 1.5, "lng": 2.5}}}]
	}`, &hits)

	cache := newMemoryGeocodeCache()
	client := NewHTTPGeocodeClient(config.GeocodeConfig{BaseURL: server.URL, APIKey: "test-key"}, cache, newTestLogger())

	first, err := client.Geocode(context.Background(), "Rua das Flores 123")
	require.NoError(t, err)

	second, err := client.Geocode(context.Background(), "Rua das Flores 123")
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
	assert.Equal(t, first, second)
}

func TestHTTPGeocodeClient_RequestDenied(t *testing.T) {
	server := geocodeTestServer(t, `{"status": "REQUEST_DENIED", "results": []}`, nil)

	client := NewHTTPGeocodeClient(config.GeocodeConfig{BaseURL: server.URL, APIKey: "bad-key"}, nil, newTestLogger())

	_, err := client.Geocode(context.Background(), "anywhere")

	assert.ErrorIs(t, err, ErrGeocodeDenied)
}

func TestHTTPGeocodeClient_ZeroResults(t *testing.T) {
	server := geocodeTestServer(t, `{"status": "ZERO_RESULTS", "results": []}`, nil)

	client := NewHTTPGeocodeClient(config.GeocodeConfig{BaseURL: server.URL, APIKey: "test-key"}, nil, newTestLogger())

	_, err := client.Geocode(context.Background(), "nowhere at all")

	assert.ErrorIs(t, err, ErrAddressNotFound)
}
