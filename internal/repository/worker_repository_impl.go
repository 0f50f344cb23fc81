package repository

import (
	"errors"

	"go-services-marketplace/internal/domain/entity"
	domainRepo "go-services-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type workerRepository struct{}

func NewWorkerRepository() domainRepo.WorkerRepository {
	return &workerRepository{}
}

// Create inserts the worker and its service join rows. Services themselves
// are never written from here, only referenced.
func (r *workerRepository) Create(db *gorm.DB, worker *entity.Worker) error {
	return db.Omit("Services.*").Create(worker).Error
}

func (r *workerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Worker, error) {
	var worker entity.Worker
	err := db.
		Preload("Profile").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("services.name ASC")
		}).
		Where("id = ?", id).
		First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &worker, nil
}

// FindVerifiedByService returns verified workers offering the given service,
// best rated first. A single joined query replaces per-worker lookups; the
// Services preload carries each worker's full category list, not just the
// browsed one.
func (r *workerRepository) FindVerifiedByService(db *gorm.DB, serviceID uuid.UUID) ([]entity.Worker, error) {
	var workers []entity.Worker
	err := db.
		Joins("JOIN worker_services ON worker_services.worker_id = workers.id").
		Where("worker_services.service_id = ?", serviceID).
		Where("workers.verification_status = ?", entity.WorkerVerificationVerified).
		Order("workers.rating DESC").
		Preload("Profile").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("services.name ASC")
		}).
		Find(&workers).Error
	if err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *workerRepository) UpdateVerificationStatus(db *gorm.DB, id uuid.UUID, status string) (int64, error) {
	result := db.Model(&entity.Worker{}).
		Where("id = ?", id).
		Update("verification_status", status)
	return result.RowsAffected, result.Error
}
