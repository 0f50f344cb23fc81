package converter

import (
	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// UserToResponse converts a User entity (with preloaded Profile and,
// for workers, Worker row) to UserResponse DTO
func UserToResponse(user *entity.User, roleName string) *dto.UserResponse {
	if user == nil {
		return nil
	}

	fullName := ""
	if user.Profile != nil {
		fullName = user.Profile.FullName
	}

	var workerID *uuid.UUID
	if user.Worker != nil {
		id := user.Worker.ID
		workerID = &id
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  fullName,
		Role:      roleName,
		WorkerID:  workerID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
