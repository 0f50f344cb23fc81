package converter

import (
	"go-services-marketplace/internal/delivery/dto"
	"go-services-marketplace/internal/domain/entity"
)

// PlaceholderReviewerName is substituted when a reviewer's profile row is
// missing.
const PlaceholderReviewerName = "Anonymous"

// ReviewToResponse converts a Review entity (with preloaded Customer
// profile) to ReviewResponse DTO
func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	reviewerName := PlaceholderReviewerName
	if review.Customer != nil {
		reviewerName = review.Customer.FullName
	}

	return &dto.ReviewResponse{
		ID:           review.ID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		ReviewerName: reviewerName,
		CreatedAt:    review.CreatedAt,
	}
}

// ReviewsToResponses converts a slice of Review entities to ReviewResponse DTOs
func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = *ReviewToResponse(&reviews[i])
	}
	return responses
}
