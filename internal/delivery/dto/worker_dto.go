package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type VerifyWorkerRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
}

// Response DTOs

// WorkerResponse is the listing projection: worker row plus display profile
// plus the worker's full category list.
type WorkerResponse struct {
	ID                 uuid.UUID         `json:"id"`
	UserID             uuid.UUID         `json:"user_id"`
	FullName           string            `json:"full_name"`
	AvatarURL          *string           `json:"avatar_url,omitempty"`
	HourlyRate         decimal.Decimal   `json:"hourly_rate"`
	Rating             float64           `json:"rating"`
	TotalJobs          int               `json:"total_jobs"`
	Status             string            `json:"status"`
	VerificationStatus string            `json:"verification_status"`
	Services           []ServiceResponse `json:"services"`
}

// WorkerDetailResponse extends the listing projection with the profile-page
// fields.
type WorkerDetailResponse struct {
	WorkerResponse
	Phone           *string `json:"phone,omitempty"`
	Address         *string `json:"address,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	ExperienceYears int     `json:"experience_years"`
}

type WorkerListResponse struct {
	Workers []WorkerResponse `json:"workers"`
	Total   int              `json:"total"`
}
