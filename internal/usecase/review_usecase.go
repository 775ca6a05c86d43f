package usecase

import (
	"context"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to post a review.
type CreateReviewInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	Message   string
	Stars     int
}

// ReviewUsecase defines the interface for review operations. Reviews are
// append-only; posting one refreshes the product's derived rating on the
// next catalog read.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
}
