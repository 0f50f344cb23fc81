package usecase

import (
	"context"
	"strings"

	"go-services-marketplace/internal/converter"
	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/domain/entity"
	"go-services-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CatalogUsecase interface {
	ListServices(ctx context.Context, search string) (*dto.ServiceListResponse, error)
	ListWorkersForService(ctx context.Context, serviceID uuid.UUID) (*dto.WorkerListResponse, error)
}

type catalogUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
	workerRepo  repository.WorkerRepository
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	workerRepo repository.WorkerRepository,
) CatalogUsecase {
	return &catalogUsecase{
		db:          db,
		log:         log,
		serviceRepo: serviceRepo,
		workerRepo:  workerRepo,
	}
}

// ListServices returns every service ordered by name. The optional search
// term narrows the already-fetched list by case-insensitive substring match;
// it never re-queries the store.
func (u *catalogUsecase) ListServices(ctx context.Context, search string) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}

	services = filterServicesByName(services, search)

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

// ListWorkersForService returns verified workers offering the service, best
// rated first, each with display profile (placeholder on absence) and full
// category list. An unknown service id yields an empty listing, not an
// error.
func (u *catalogUsecase) ListWorkersForService(ctx context.Context, serviceID uuid.UUID) (*dto.WorkerListResponse, error) {
	workers, err := u.workerRepo.FindVerifiedByService(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to list workers for service %s: %+v", serviceID, err)
		return nil, err
	}

	return &dto.WorkerListResponse{
		Workers: converter.WorkersToResponses(workers),
		Total:   len(workers),
	}, nil
}

// filterServicesByName keeps services whose name contains the query,
// case-insensitive. An empty query keeps everything.
func filterServicesByName(services []entity.Service, query string) []entity.Service {
	if query == "" {
		return services
	}

	needle := strings.ToLower(query)
	filtered := make([]entity.Service, 0, len(services))
	for _, service := range services {
		if strings.Contains(strings.ToLower(service.Name), needle) {
			filtered = append(filtered, service)
		}
	}
	return filtered
}
