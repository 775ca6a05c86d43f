// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a product variant is not found.
	ErrVariantNotFound = errors.New("product variant not found")
)

// ProductFilter is a tagged-variant filter predicate over products. Filters
// are composed by the catalog usecase and translated to SQL by the store
// adapter, keeping the predicate structure typed end to end.
type ProductFilter interface {
	isProductFilter()
}

// NameContains matches products whose name contains the value, case-insensitively.
type NameContains struct {
	Value string
}

// CategoryIn matches products whose category is one of the given values.
type CategoryIn struct {
	Values []entity.Category
}

// PhoneModelIn matches products having at least one variant whose phone
// model is one of the given values.
type PhoneModelIn struct {
	Values []entity.PhoneModel
}

// And is the conjunction of its child filters.
type And struct {
	Filters []ProductFilter
}

// Or is the disjunction of its child filters.
type Or struct {
	Filters []ProductFilter
}

func (NameContains) isProductFilter() {}
func (CategoryIn) isProductFilter()   {}
func (PhoneModelIn) isProductFilter() {}
func (And) isProductFilter()          {}
func (Or) isProductFilter()           {}

// ProductQuery bundles the filter, ordering and pagination of a catalog
// listing query. SortBy must already be a whitelisted column name; Offset is
// never negative.
type ProductQuery struct {
	Filter ProductFilter // nil means no filtering
	SortBy string
	Order  string // "asc" or "desc"
	Offset int
	Limit  int
}

// ProductRepository defines the standard operations for product persistence.
// Read operations load each product's review stars so derived rating fields
// can be computed at the usecase layer.
type ProductRepository interface {
	// Create persists a new product together with its nested variants.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product and replaces its variants.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a single product with all of its variants.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Search executes a filtered, sorted, paginated listing query and a
	// count query under the same filter. Listed products carry all loaded
	// variants; the usecase trims to the representative first variant.
	Search(ctx context.Context, query ProductQuery) ([]*entity.Product, int64, error)

	// FindRecent retrieves the most recently created products.
	FindRecent(ctx context.Context, limit int) ([]*entity.Product, error)

	// FindByFacets retrieves products matching any of the given categories or
	// phone models, excluding the given product IDs, ordered by descending
	// review count.
	FindByFacets(ctx context.Context, categories []entity.Category, phoneModels []entity.PhoneModel, excludeIDs []uuid.UUID, limit int) ([]*entity.Product, error)

	// FindVariantByID retrieves a single product variant.
	FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)
}
