// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListProductsInput defines the parameters of a catalog listing query.
// Zero values mean "use the default": page 1, limit 12, newest first.
// Category and PhoneModel are explicit facet filters; they are ignored when
// Search is present, because the search term already widens across facets.
type ListProductsInput struct {
	Search     string
	Category   string
	PhoneModel string
	Page       int
	Limit      int
	SortBy     string
	Order      string
}

// --- Output DTOs ---

// ProductPage is one page of catalog listing results together with its
// pagination envelope.
type ProductPage struct {
	Products   []*entity.Product `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// CatalogUsecase defines the interface for catalog browsing operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	// ListProducts executes a filtered, paginated catalog listing. Results
	// are served from the result cache when a previous identical query is
	// still fresh.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)

	// GetProduct retrieves a single product with all variants and its
	// derived rating fields.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetProductReviews retrieves all reviews for a product, newest first.
	GetProductReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
