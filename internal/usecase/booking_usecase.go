package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-services-marketplace/internal/converter"
	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/delivery/http/middleware"
	"go-services-marketplace/internal/domain/entity"
	"go-services-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotAuthenticated     = errors.New("no authenticated user in request")
	ErrMissingBookingFields = errors.New("scheduled time and customer address are required")
	ErrInvalidScheduleTime  = errors.New("scheduled_at must be an RFC 3339 timestamp")
	ErrWorkerHasNoServices  = errors.New("worker offers no services")
	ErrServiceNotOffered    = errors.New("worker does not offer the requested service")
	ErrBookingSubmission    = errors.New("booking submission failed")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error)
}

type bookingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	workerRepo  repository.WorkerRepository
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	workerRepo repository.WorkerRepository,
) BookingUsecase {
	return &bookingUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
		workerRepo:  workerRepo,
	}
}

// CreateBooking inserts a single booking request.
//
// Flow:
// 1. Reject missing fields and missing caller identity before any store call
// 2. Load the worker with its ordered service join
// 3. Resolve the booked service: explicit service_id when offered,
//    otherwise the worker's first service
// 4. Price at the worker's current hourly rate
// 5. Insert one row with status "requested"
//
// No idempotency: resubmission inserts a duplicate, there is no dedup key.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if strings.TrimSpace(req.ScheduledAt) == "" || strings.TrimSpace(req.CustomerAddress) == "" {
		return nil, ErrMissingBookingFields
	}

	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidScheduleTime
	}

	worker, err := u.workerRepo.FindByID(u.db.WithContext(ctx), req.WorkerID)
	if err != nil {
		u.log.Warnf("Failed to find worker %s: %+v", req.WorkerID, err)
		return nil, err
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}

	serviceID, err := resolveBookedService(worker, req.ServiceID)
	if err != nil {
		return nil, err
	}

	var notes *string
	if trimmed := strings.TrimSpace(req.Notes); trimmed != "" {
		notes = &trimmed
	}

	booking := &entity.Booking{
		CustomerID:      customerID,
		WorkerID:        worker.ID,
		ServiceID:       serviceID,
		ScheduledAt:     scheduledAt,
		TotalPrice:      worker.HourlyRate,
		CustomerAddress: req.CustomerAddress,
		Notes:           notes,
		Status:          entity.BookingStatusRequested,
	}

	if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		u.log.Errorf("Failed to insert booking for worker %s: %+v", worker.ID, err)
		// Carry the store's message verbatim for display
		return nil, fmt.Errorf("%w: %v", ErrBookingSubmission, err)
	}

	u.log.Infof("Booking created: id=%s, customer=%s, worker=%s, service=%s", booking.ID, customerID, worker.ID, serviceID)

	// Reload with worker and service context for the response
	fullBooking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || fullBooking == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", booking.ID, err)
		return converter.BookingToResponse(booking), nil
	}

	return converter.BookingToResponse(fullBooking), nil
}

// GetMyBookings returns all bookings for the logged-in customer, newest
// first.
func (u *bookingUsecase) GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	bookings, err := u.bookingRepo.FindByCustomerID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for customer %s: %+v", customerID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// resolveBookedService picks the service a booking is filed under. The
// worker's service list arrives ordered by name, so the default (first
// entry) is deterministic; an explicit request wins when the worker
// actually offers it.
func resolveBookedService(worker *entity.Worker, requested *uuid.UUID) (uuid.UUID, error) {
	if len(worker.Services) == 0 {
		return uuid.Nil, ErrWorkerHasNoServices
	}

	if requested == nil {
		return worker.Services[0].ID, nil
	}

	for _, service := range worker.Services {
		if service.ID == *requested {
			return service.ID, nil
		}
	}
	return uuid.Nil, ErrServiceNotOffered
}
