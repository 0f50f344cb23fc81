package handler

import (
	"net/http"

	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/service"
	"go-services-marketplace/pkg/response"
)

type LocationHandler struct {
	geolocation *service.GeolocationService
}

func NewLocationHandler(geolocation *service.GeolocationService) *LocationHandler {
	return &LocationHandler{
		geolocation: geolocation,
	}
}

// Locate resolves a free-form address to coordinates. The feature is
// optional; without a configured provider it reports not implemented.
func (h *LocationHandler) Locate(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")

	coords, err := h.geolocation.Locate(r.Context(), address)
	if err != nil {
		switch err {
		case service.ErrGeocodeUnsupported:
			response.NotImplemented(w, "Geolocation is not available")
		case service.ErrGeocodeDenied:
			response.Error(w, http.StatusForbidden, "Geolocation access denied", nil)
		case service.ErrAddressRequired:
			response.Error(w, http.StatusBadRequest, "Address is required", nil)
		case service.ErrAddressNotFound:
			response.NotFound(w, "Address not found")
		default:
			response.InternalServerError(w, "Failed to resolve location")
		}
		return
	}

	response.Success(w, http.StatusOK, "Location resolved successfully", &dto.LocationResponse{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	})
}
