package converter

import (
	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/domain/entity"
)

// PlaceholderWorkerName is substituted when a worker's profile row is
// missing. The listing keeps the worker instead of failing.
const PlaceholderWorkerName = "Unknown"

// WorkerToResponse converts a Worker entity (with preloaded Profile and
// Services) to the listing projection. A nil Profile degrades to the
// placeholder name with no avatar.
func WorkerToResponse(worker *entity.Worker) *dto.WorkerResponse {
	if worker == nil {
		return nil
	}

	fullName := PlaceholderWorkerName
	var avatarURL *string
	if worker.Profile != nil {
		fullName = worker.Profile.FullName
		avatarURL = worker.Profile.AvatarURL
	}

	return &dto.WorkerResponse{
		ID:                 worker.ID,
		UserID:             worker.UserID,
		FullName:           fullName,
		AvatarURL:          avatarURL,
		HourlyRate:         worker.HourlyRate,
		Rating:             worker.Rating,
		TotalJobs:          worker.TotalJobs,
		Status:             worker.Status,
		VerificationStatus: worker.VerificationStatus,
		Services:           ServicesToResponses(worker.Services),
	}
}

// WorkersToResponses converts a slice of Worker entities to WorkerResponse
// DTOs, preserving input order.
func WorkersToResponses(workers []entity.Worker) []dto.WorkerResponse {
	responses := make([]dto.WorkerResponse, len(workers))
	for i := range workers {
		responses[i] = *WorkerToResponse(&workers[i])
	}
	return responses
}

// WorkerToDetailResponse converts a Worker entity to the profile-page
// projection, same placeholder policy as the listing.
func WorkerToDetailResponse(worker *entity.Worker) *dto.WorkerDetailResponse {
	if worker == nil {
		return nil
	}

	resp := &dto.WorkerDetailResponse{
		WorkerResponse:  *WorkerToResponse(worker),
		Address:         worker.Address,
		Bio:             worker.Bio,
		ExperienceYears: worker.ExperienceYears,
	}
	if worker.Profile != nil {
		resp.Phone = worker.Profile.Phone
	}
	return resp
}
