package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterCustomerRequest creates a user plus display profile
type RegisterCustomerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
}

// RegisterWorkerRequest creates a user, display profile, worker row and
// service links in one transaction. The worker starts unverified.
type RegisterWorkerRequest struct {
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required,min=6"`
	FullName        string          `json:"full_name" validate:"required,min=2"`
	Phone           string          `json:"phone" validate:"omitempty,min=7,max=20"`
	HourlyRate      decimal.Decimal `json:"hourly_rate" validate:"required"`
	ExperienceYears int             `json:"experience_years" validate:"gte=0,lte=80"`
	Bio             string          `json:"bio" validate:"omitempty,max=4000"`
	Address         string          `json:"address" validate:"omitempty,max=500"`
	ServiceIDs      []uuid.UUID     `json:"service_ids" validate:"required,min=1"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	WorkerID  *uuid.UUID `json:"worker_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
