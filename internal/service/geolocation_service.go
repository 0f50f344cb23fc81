package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrGeocodeUnsupported = errors.New("geolocation is not configured")
	ErrGeocodeDenied      = errors.New("geolocation access denied")
	ErrAddressNotFound    = errors.New("address not found")
	ErrAddressRequired    = errors.New("address is required")
)

// GeolocationService resolves customer addresses to coordinates. The
// provider is optional; without one every lookup reports unsupported.
type GeolocationService struct {
	provider GeocodeProvider
	log      *logrus.Logger
}

func NewGeolocationService(provider GeocodeProvider, log *logrus.Logger) *GeolocationService {
	return &GeolocationService{provider: provider, log: log}
}

func (s *GeolocationService) Locate(ctx context.Context, address string) (*Coordinates, error) {
	if s.provider == nil {
		return nil, ErrGeocodeUnsupported
	}

	if strings.TrimSpace(address) == "" {
		return nil, ErrAddressRequired
	}

	coords, err := s.provider.Geocode(ctx, address)
	if err != nil {
		if !errors.Is(err, ErrGeocodeDenied) && !errors.Is(err, ErrAddressNotFound) {
			s.log.Warnf("Failed to geocode address: %+v", err)
		}
		return nil, err
	}

	return coords, nil
}
