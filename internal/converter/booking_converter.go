package converter

import (
	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO.
// Worker and service context is included when preloaded.
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:              booking.ID,
		CustomerID:      booking.CustomerID,
		WorkerID:        booking.WorkerID,
		ServiceID:       booking.ServiceID,
		ScheduledAt:     booking.ScheduledAt,
		TotalPrice:      booking.TotalPrice,
		CustomerAddress: booking.CustomerAddress,
		Notes:           booking.Notes,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt,
	}

	if booking.Worker.ID != uuid.Nil && booking.Worker.Profile != nil {
		response.WorkerName = booking.Worker.Profile.FullName
	}
	if booking.Service.ID != uuid.Nil {
		response.ServiceName = booking.Service.Name
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
