package repository

import (
	"go-services-marketplace/internal/domain/entity"
	domainRepo "go-services-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

// FindRecentByWorkerID returns the newest reviews for a worker capped at
// limit, with the reviewer's display profile preloaded.
func (r *reviewRepository) FindRecentByWorkerID(db *gorm.DB, workerID uuid.UUID, limit int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.
		Preload("Customer").
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
