package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a customer rating of a completed job. Reviews are
// read-only in the browsing flows; the review pipeline owns writes.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	WorkerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"worker_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    *string   `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Worker   Worker   `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
	Customer *Profile `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
