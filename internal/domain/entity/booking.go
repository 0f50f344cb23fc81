package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusRequested BookingStatus = "requested"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer request to engage a worker at a scheduled
// time. The browsing and booking flows only ever insert bookings; status
// transitions belong to the worker-side flows.
type Booking struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	WorkerID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"worker_id"`
	ServiceID       uuid.UUID       `gorm:"type:uuid;not null" json:"service_id"`
	ScheduledAt     time.Time       `gorm:"not null" json:"scheduled_at"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	CustomerAddress string          `gorm:"type:text;not null" json:"customer_address"`
	Notes           *string         `gorm:"type:text" json:"notes,omitempty"`
	Status          BookingStatus   `gorm:"type:varchar(20);not null;default:'requested';index" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Worker  Worker  `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsRequested checks if the booking is still awaiting the worker
func (b *Booking) IsRequested() bool {
	return b.Status == BookingStatusRequested
}

// IsCancelled checks if the booking was cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
