package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/usecase"
	"go-services-marketplace/pkg/response"
	"go-services-marketplace/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type WorkerHandler struct {
	workerUsecase usecase.WorkerUsecase
	validator     *validator.CustomValidator
}

func NewWorkerHandler(workerUsecase usecase.WorkerUsecase, validator *validator.CustomValidator) *WorkerHandler {
	return &WorkerHandler{
		workerUsecase: workerUsecase,
		validator:     validator,
	}
}

// GetWorker returns a worker's full public profile.
func (h *WorkerHandler) GetWorker(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid worker ID", nil)
		return
	}

	worker, err := h.workerUsecase.GetWorkerDetail(r.Context(), workerID)
	if err != nil {
		if err == usecase.ErrWorkerNotFound {
			response.NotFound(w, "Worker not found")
			return
		}
		response.InternalServerError(w, "Failed to get worker")
		return
	}

	response.Success(w, http.StatusOK, "Worker retrieved successfully", worker)
}

// GetWorkerReviews returns a worker's most recent reviews. The limit
// query parameter caps the listing; invalid or missing values fall back
// to the default.
func (h *WorkerHandler) GetWorkerReviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid worker ID", nil)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reviews, err := h.workerUsecase.GetRecentReviews(r.Context(), workerID, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get reviews")
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// VerifyWorker sets a worker's verification status. Admin only.
func (h *WorkerHandler) VerifyWorker(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid worker ID", nil)
		return
	}

	var req dto.VerifyWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.workerUsecase.VerifyWorker(r.Context(), workerID, req.Status); err != nil {
		switch err {
		case usecase.ErrWorkerNotFound:
			response.NotFound(w, "Worker not found")
		case usecase.ErrInvalidVerificationStatus:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to verify worker")
		}
		return
	}

	response.Success(w, http.StatusOK, "Worker verification updated successfully", nil)
}
