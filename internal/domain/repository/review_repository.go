package repository

import (
	"go-services-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	FindRecentByWorkerID(db *gorm.DB, workerID uuid.UUID, limit int) ([]entity.Review, error)
}
