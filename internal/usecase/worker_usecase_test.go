package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-services-marketplace/internal/converter"
	"go-services-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkerFixture(t *testing.T, workerRepo *fakeWorkerRepo, reviewRepo *fakeReviewRepo) WorkerUsecase {
	t.Helper()
	return NewWorkerUsecase(newTestDB(t), newTestLogger(), workerRepo, reviewRepo)
}

func TestGetWorkerDetail_NotFound(t *testing.T) {
	uc := newWorkerFixture(t, &fakeWorkerRepo{workers: map[uuid.UUID]*entity.Worker{}}, &fakeReviewRepo{})

	_, err := uc.GetWorkerDetail(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestGetWorkerDetail_IncludesProfileAndServices(t *testing.T) {
	workerID := uuid.New()
	phone := "+55 11 98888-7777"
	bio := "Twelve years on residential wiring."
	workerRepo := &fakeWorkerRepo{workers: map[uuid.UUID]*entity.Worker{
		workerID: {
			ID:                 workerID,
			HourlyRate:         decimal.NewFromInt(180),
			Rating:             4.7,
			TotalJobs:          231,
			VerificationStatus: entity.WorkerVerificationVerified,
			Bio:                &bio,
			ExperienceYears:    12,
			Profile:            &entity.Profile{FullName: "Carla Dias", Phone: &phone},
			Services:           []entity.Service{{ID: uuid.New(), Name: "Electrical"}},
		},
	}}
	uc := newWorkerFixture(t, workerRepo, &fakeReviewRepo{})

	detail, err := uc.GetWorkerDetail(context.Background(), workerID)

	require.NoError(t, err)
	assert.Equal(t, "Carla Dias", detail.FullName)
	assert.Equal(t, &phone, detail.Phone)
	assert.Equal(t, &bio, detail.Bio)
	assert.Equal(t, 12, detail.ExperienceYears)
	require.Len(t, detail.Services, 1)
	assert.Equal(t, "Electrical", detail.Services[0].Name)
}

func TestGetRecentReviews_DefaultLimit(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	uc := newWorkerFixture(t, &fakeWorkerRepo{}, reviewRepo)

	_, err := uc.GetRecentReviews(context.Background(), uuid.New(), 0)

	require.NoError(t, err)
	assert.Equal(t, DefaultReviewLimit, reviewRepo.lastLimit)
}

func TestGetRecentReviews_DegradesToEmptyOnStoreError(t *testing.T) {
	reviewRepo := &fakeReviewRepo{err: errors.New("relation reviews does not exist")}
	uc := newWorkerFixture(t, &fakeWorkerRepo{}, reviewRepo)

	result, err := uc.GetRecentReviews(context.Background(), uuid.New(), 5)

	// The profile page renders without reviews rather than failing.
	require.NoError(t, err)
	assert.Empty(t, result.Reviews)
}

func TestGetRecentReviews_AnonymousFallback(t *testing.T) {
	comment := "Arrived on time, great work."
	reviewRepo := &fakeReviewRepo{reviews: []entity.Review{
		{
			ID:        uuid.New(),
			Rating:    5,
			Comment:   &comment,
			CreatedAt: time.Now(),
			Customer:  &entity.Profile{FullName: "Rafael Lima"},
		},
		{
			ID:        uuid.New(),
			Rating:    4,
			CreatedAt: time.Now().Add(-time.Hour),
			Customer:  nil,
		},
	}}
	uc := newWorkerFixture(t, &fakeWorkerRepo{}, reviewRepo)

	result, err := uc.GetRecentReviews(context.Background(), uuid.New(), 5)

	require.NoError(t, err)
	require.Len(t, result.Reviews, 2)
	assert.Equal(t, "Rafael Lima", result.Reviews[0].ReviewerName)
	assert.Equal(t, converter.PlaceholderReviewerName, result.Reviews[1].ReviewerName)
}

func TestGetRecentReviews_NoReviewsIsNotAnError(t *testing.T) {
	uc := newWorkerFixture(t, &fakeWorkerRepo{}, &fakeReviewRepo{})

	result, err := uc.GetRecentReviews(context.Background(), uuid.New(), 5)

	require.NoError(t, err)
	assert.Empty(t, result.Reviews)
	assert.Equal(t, 0, result.Total)
}

func TestVerifyWorker_RejectsUnknownStatus(t *testing.T) {
	uc := newWorkerFixture(t, &fakeWorkerRepo{}, &fakeReviewRepo{})

	err := uc.VerifyWorker(context.Background(), uuid.New(), "approved")

	assert.ErrorIs(t, err, ErrInvalidVerificationStatus)
}

func TestVerifyWorker_NotFoundWhenNoRowUpdated(t *testing.T) {
	uc := newWorkerFixture(t, &fakeWorkerRepo{affected: 0}, &fakeReviewRepo{})

	err := uc.VerifyWorker(context.Background(), uuid.New(), entity.WorkerVerificationVerified)

	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestVerifyWorker_UpdatesStatus(t *testing.T) {
	workerRepo := &fakeWorkerRepo{affected: 1}
	uc := newWorkerFixture(t, workerRepo, &fakeReviewRepo{})

	err := uc.VerifyWorker(context.Background(), uuid.New(), entity.WorkerVerificationRejected)

	require.NoError(t, err)
	assert.Equal(t, entity.WorkerVerificationRejected, workerRepo.lastStatus)
}
