package usecase

import (
	"context"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// VariantInput defines one purchasable variant of a product being created or
// updated. SKUs are generated server-side and cannot be supplied.
type VariantInput struct {
	Color      string
	Stock      int
	Image      string
	PhoneModel entity.PhoneModel
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name           string
	Description    string
	Price          int
	Discount       int
	Category       entity.Category
	Tag            entity.Tag
	AvailableModel string
	Variants       []VariantInput
}

// UpdateProductInput defines the data for a full product update. The variant
// set replaces the existing one.
type UpdateProductInput struct {
	Name           string
	Description    string
	Price          int
	Discount       int
	Category       entity.Category
	Tag            entity.Tag
	AvailableModel string
	Variants       []VariantInput
}

// ProductUsecase defines the interface for administrative product management.
// Every mutation invalidates the catalog result cache.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
