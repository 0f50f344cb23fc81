package repository

import (
	"go-services-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	FindAll(db *gorm.DB) ([]entity.Service, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
}
