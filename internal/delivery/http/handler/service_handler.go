package handler

import (
	"net/http"

	"go-services-marketplace/internal/usecase"
	"go-services-marketplace/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ServiceHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewServiceHandler(catalogUsecase usecase.CatalogUsecase) *ServiceHandler {
	return &ServiceHandler{
		catalogUsecase: catalogUsecase,
	}
}

// ListServices returns the service catalog, optionally narrowed by the
// search query parameter (case-insensitive name match).
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	services, err := h.catalogUsecase.ListServices(r.Context(), search)
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

// ListWorkers returns the verified workers offering a service, ordered
// by rating.
func (h *ServiceHandler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	workers, err := h.catalogUsecase.ListWorkersForService(r.Context(), serviceID)
	if err != nil {
		response.InternalServerError(w, "Failed to get workers")
		return
	}

	response.Success(w, http.StatusOK, "Workers retrieved successfully", workers)
}
