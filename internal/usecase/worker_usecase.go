package usecase

import (
	"context"
	"errors"

	"go-services-marketplace/internal/converter"
	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/domain/entity"
	"go-services-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWorkerNotFound            = errors.New("worker not found")
	ErrInvalidVerificationStatus = errors.New("verification status must be verified or rejected")
)

// DefaultReviewLimit caps the recent-review listing when the caller does
// not ask for a specific count.
const DefaultReviewLimit = 5

type WorkerUsecase interface {
	GetWorkerDetail(ctx context.Context, workerID uuid.UUID) (*dto.WorkerDetailResponse, error)
	GetRecentReviews(ctx context.Context, workerID uuid.UUID, limit int) (*dto.ReviewListResponse, error)
	VerifyWorker(ctx context.Context, workerID uuid.UUID, status string) error
}

type workerUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	workerRepo repository.WorkerRepository
	reviewRepo repository.ReviewRepository
}

func NewWorkerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	workerRepo repository.WorkerRepository,
	reviewRepo repository.ReviewRepository,
) WorkerUsecase {
	return &workerUsecase{
		db:         db,
		log:        log,
		workerRepo: workerRepo,
		reviewRepo: reviewRepo,
	}
}

// GetWorkerDetail returns one worker with display profile and full service
// join. No caching: every call re-reads the store.
func (u *workerUsecase) GetWorkerDetail(ctx context.Context, workerID uuid.UUID) (*dto.WorkerDetailResponse, error) {
	worker, err := u.workerRepo.FindByID(u.db.WithContext(ctx), workerID)
	if err != nil {
		u.log.Warnf("Failed to find worker %s: %+v", workerID, err)
		return nil, err
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}

	return converter.WorkerToDetailResponse(worker), nil
}

// GetRecentReviews returns the newest reviews for a worker. A read failure
// is logged and degrades to an empty listing; the profile page renders
// without reviews rather than failing.
func (u *workerUsecase) GetRecentReviews(ctx context.Context, workerID uuid.UUID, limit int) (*dto.ReviewListResponse, error) {
	if limit <= 0 {
		limit = DefaultReviewLimit
	}

	reviews, err := u.reviewRepo.FindRecentByWorkerID(u.db.WithContext(ctx), workerID, limit)
	if err != nil {
		u.log.Warnf("Failed to load reviews for worker %s, degrading to empty: %+v", workerID, err)
		return &dto.ReviewListResponse{Reviews: []dto.ReviewResponse{}}, nil
	}

	return &dto.ReviewListResponse{
		Reviews: converter.ReviewsToResponses(reviews),
		Total:   len(reviews),
	}, nil
}

// VerifyWorker flips a worker's verification status, the gate controlling
// discoverability. Admin-only at the route layer.
func (u *workerUsecase) VerifyWorker(ctx context.Context, workerID uuid.UUID, status string) error {
	if status != entity.WorkerVerificationVerified && status != entity.WorkerVerificationRejected {
		return ErrInvalidVerificationStatus
	}

	affected, err := u.workerRepo.UpdateVerificationStatus(u.db.WithContext(ctx), workerID, status)
	if err != nil {
		u.log.Warnf("Failed to update verification for worker %s: %+v", workerID, err)
		return err
	}
	if affected == 0 {
		return ErrWorkerNotFound
	}

	u.log.Infof("Worker verification updated: id=%s, status=%s", workerID, status)
	return nil
}
