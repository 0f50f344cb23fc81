package repository

import (
	"go-services-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkerRepository interface {
	Create(db *gorm.DB, worker *entity.Worker) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Worker, error)
	FindVerifiedByService(db *gorm.DB, serviceID uuid.UUID) ([]entity.Worker, error)
	UpdateVerificationStatus(db *gorm.DB, id uuid.UUID, status string) (int64, error)
}
