package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service represents a category of home-service work with a base hourly price.
// Services are read-only for the browsing and booking flows.
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	Icon        *string         `gorm:"type:varchar(16)" json:"icon,omitempty"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Workers []Worker `gorm:"many2many:worker_services" json:"workers,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
