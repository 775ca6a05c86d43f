// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for review-related database operations.
// Reviews are append-only; there is no update or delete path.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByProduct retrieves all reviews for a product, newest first.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// FindByUser retrieves all reviews authored by a user, each with its
	// product loaded for recommendation facet derivation.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)
}
