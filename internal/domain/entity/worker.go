package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Worker verification status values. Only verified workers are discoverable.
const (
	WorkerVerificationPending  = "pending"
	WorkerVerificationVerified = "verified"
	WorkerVerificationRejected = "rejected"
)

// Worker availability status values
const (
	WorkerStatusAvailable = "available"
	WorkerStatusBusy      = "busy"
	WorkerStatusOffline   = "offline"
)

// Worker represents a service provider bookable by customers.
// Rating and TotalJobs are maintained by the review pipeline, never
// recomputed by the browsing or booking flows.
type Worker struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	HourlyRate         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"hourly_rate"`
	Rating             float64         `gorm:"type:numeric(2,1);not null;default:0" json:"rating"`
	TotalJobs          int             `gorm:"not null;default:0" json:"total_jobs"`
	VerificationStatus string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"verification_status"`
	Status             string          `gorm:"type:varchar(20);not null;default:'offline'" json:"status"`
	Address            *string         `gorm:"type:text" json:"address,omitempty"`
	Bio                *string         `gorm:"type:text" json:"bio,omitempty"`
	ExperienceYears    int             `gorm:"not null;default:0" json:"experience_years"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Profile  *Profile  `gorm:"foreignKey:UserID;references:ID" json:"profile,omitempty"`
	Services []Service `gorm:"many2many:worker_services" json:"services,omitempty"`
}

func (Worker) TableName() string {
	return "workers"
}

// IsVerified reports whether the worker passed verification and may be
// surfaced to customers.
func (w *Worker) IsVerified() bool {
	return w.VerificationStatus == WorkerVerificationVerified
}
