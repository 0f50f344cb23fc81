package usecase

import (
	"io"
	"testing"

	"go-services-marketplace/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a gorm handle backed by sqlmock. The fakes below absorb
// every store call, so no SQL expectations are needed; the handle only
// exists because the usecases derive a context-scoped session from it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeServiceRepo struct {
	services []entity.Service
	err      error
	calls    int
}

func (f *fakeServiceRepo) FindAll(db *gorm.DB) ([]entity.Service, error) {
	f.calls++
	return f.services, f.err
}

func (f *fakeServiceRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	for i := range f.services {
		if f.services[i].ID == id {
			return &f.services[i], nil
		}
	}
	return nil, f.err
}

type fakeWorkerRepo struct {
	workers     map[uuid.UUID]*entity.Worker
	verified    []entity.Worker
	findErr     error
	createErr   error
	updateErr   error
	affected    int64
	findCalls   int
	createCalls int

	lastStatus string
}

func (f *fakeWorkerRepo) Create(db *gorm.DB, worker *entity.Worker) error {
	f.createCalls++
	return f.createErr
}

func (f *fakeWorkerRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Worker, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.workers[id], nil
}

func (f *fakeWorkerRepo) FindVerifiedByService(db *gorm.DB, serviceID uuid.UUID) ([]entity.Worker, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.verified, nil
}

func (f *fakeWorkerRepo) UpdateVerificationStatus(db *gorm.DB, id uuid.UUID, status string) (int64, error) {
	f.lastStatus = status
	return f.affected, f.updateErr
}

type fakeReviewRepo struct {
	reviews   []entity.Review
	err       error
	lastLimit int
}

func (f *fakeReviewRepo) FindRecentByWorkerID(db *gorm.DB, workerID uuid.UUID, limit int) ([]entity.Review, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.reviews) {
		return f.reviews[:limit], nil
	}
	return f.reviews, nil
}

type fakeBookingRepo struct {
	created     []*entity.Booking
	byID        map[uuid.UUID]*entity.Booking
	byCustomer  []entity.Booking
	createErr   error
	findErr     error
	createCalls int
}

func (f *fakeBookingRepo) Create(db *gorm.DB, booking *entity.Booking) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	booking.ID = uuid.New()
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byID[id], nil
}

func (f *fakeBookingRepo) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byCustomer, nil
}
