package usecase

import (
	"context"
	"errors"
	"testing"

	"go-services-marketplace/internal/converter"
	"go-services-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T, serviceRepo *fakeServiceRepo, workerRepo *fakeWorkerRepo) CatalogUsecase {
	t.Helper()
	return NewCatalogUsecase(newTestDB(t), newTestLogger(), serviceRepo, workerRepo)
}

func namedService(name string) entity.Service {
	return entity.Service{
		ID:        uuid.New(),
		Name:      name,
		BasePrice: decimal.NewFromInt(100),
	}
}

func TestListServices_ReturnsAllInStoreOrder(t *testing.T) {
	serviceRepo := &fakeServiceRepo{services: []entity.Service{
		namedService("Cleaning"),
		namedService("Electrical"),
		namedService("Plumbing"),
	}}
	uc := newCatalogFixture(t, serviceRepo, &fakeWorkerRepo{})

	result, err := uc.ListServices(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, result.Services, 3)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, "Cleaning", result.Services[0].Name)
	assert.Equal(t, "Electrical", result.Services[1].Name)
	assert.Equal(t, "Plumbing", result.Services[2].Name)
}

func TestListServices_SearchMatchesCaseInsensitiveSubstring(t *testing.T) {
	serviceRepo := &fakeServiceRepo{services: []entity.Service{
		namedService("Cleaning"),
		namedService("Electrical"),
		namedService("Plumbing"),
	}}
	uc := newCatalogFixture(t, serviceRepo, &fakeWorkerRepo{})

	result, err := uc.ListServices(context.Background(), "elec")

	require.NoError(t, err)
	require.Len(t, result.Services, 1)
	assert.Equal(t, "Electrical", result.Services[0].Name)
	// The filter narrows the fetched list; it never refetches.
	assert.Equal(t, 1, serviceRepo.calls)
}

func TestListServices_SearchWithoutMatchesReturnsEmpty(t *testing.T) {
	serviceRepo := &fakeServiceRepo{services: []entity.Service{
		namedService("Cleaning"),
	}}
	uc := newCatalogFixture(t, serviceRepo, &fakeWorkerRepo{})

	result, err := uc.ListServices(context.Background(), "roofing")

	require.NoError(t, err)
	assert.Empty(t, result.Services)
	assert.Equal(t, 0, result.Total)
}

func TestListServices_StoreErrorPropagates(t *testing.T) {
	serviceRepo := &fakeServiceRepo{err: errors.New("connection refused")}
	uc := newCatalogFixture(t, serviceRepo, &fakeWorkerRepo{})

	_, err := uc.ListServices(context.Background(), "")

	assert.Error(t, err)
}

func TestListWorkersForService_PreservesOrderAndFillsProfiles(t *testing.T) {
	avatar := "https://cdn.example.com/a.png"
	workerRepo := &fakeWorkerRepo{verified: []entity.Worker{
		{
			ID:                 uuid.New(),
			Rating:             4.9,
			HourlyRate:         decimal.NewFromInt(150),
			VerificationStatus: entity.WorkerVerificationVerified,
			Profile:            &entity.Profile{FullName: "Ana Pereira", AvatarURL: &avatar},
		},
		{
			ID:                 uuid.New(),
			Rating:             4.2,
			HourlyRate:         decimal.NewFromInt(120),
			VerificationStatus: entity.WorkerVerificationVerified,
			// Missing profile row: the listing keeps the worker.
			Profile: nil,
		},
	}}
	uc := newCatalogFixture(t, &fakeServiceRepo{}, workerRepo)

	result, err := uc.ListWorkersForService(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, result.Workers, 2)
	assert.Equal(t, "Ana Pereira", result.Workers[0].FullName)
	assert.Equal(t, &avatar, result.Workers[0].AvatarURL)
	assert.Equal(t, converter.PlaceholderWorkerName, result.Workers[1].FullName)
	assert.Nil(t, result.Workers[1].AvatarURL)
}

func TestListWorkersForService_UnknownServiceYieldsEmptyListing(t *testing.T) {
	uc := newCatalogFixture(t, &fakeServiceRepo{}, &fakeWorkerRepo{})

	result, err := uc.ListWorkersForService(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, result.Workers)
	assert.Equal(t, 0, result.Total)
}
