package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	WorkerID        uuid.UUID  `json:"worker_id" validate:"required"`
	ServiceID       *uuid.UUID `json:"service_id" validate:"omitempty"`
	ScheduledAt     string     `json:"scheduled_at" validate:"required"` // RFC 3339
	CustomerAddress string     `json:"customer_address" validate:"required"`
	Notes           string     `json:"notes" validate:"omitempty,max=2000"`
}

// Response DTOs

type BookingResponse struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	WorkerID        uuid.UUID       `json:"worker_id"`
	WorkerName      string          `json:"worker_name,omitempty"`
	ServiceID       uuid.UUID       `json:"service_id"`
	ServiceName     string          `json:"service_name,omitempty"`
	ScheduledAt     time.Time       `json:"scheduled_at"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	CustomerAddress string          `json:"customer_address"`
	Notes           *string         `json:"notes,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
