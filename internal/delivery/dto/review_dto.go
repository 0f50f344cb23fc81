package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}
