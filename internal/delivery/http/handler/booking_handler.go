package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/usecase"
	"go-services-marketplace/pkg/response"
	"go-services-marketplace/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// CreateBooking submits a booking request for the authenticated customer.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch {
		case err == usecase.ErrMissingBookingFields,
			err == usecase.ErrInvalidScheduleTime,
			err == usecase.ErrWorkerHasNoServices,
			err == usecase.ErrServiceNotOffered:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case err == usecase.ErrNotAuthenticated:
			response.Unauthorized(w, err.Error())
		case err == usecase.ErrWorkerNotFound:
			response.NotFound(w, "Worker not found")
		case errors.Is(err, usecase.ErrBookingSubmission):
			// Surface the store's own message so the failure is diagnosable
			// from the client side.
			response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking requested successfully", booking)
}

// GetMyBookings lists the authenticated customer's bookings, newest first.
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.GetMyBookings(r.Context())
	if err != nil {
		if err == usecase.ErrNotAuthenticated {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}
