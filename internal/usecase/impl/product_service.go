package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "snapcase/internal/delivery/context"
	"snapcase/internal/domain/entity"
	domainerrors "snapcase/internal/domain/errors"
	"snapcase/internal/domain/repository"
	"snapcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface for administrative
// product management.
type productService struct {
	productRepo repository.ProductRepository
	cache       repository.Cache
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Cache       repository.Cache
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct persists a new product with its variants and invalidates the
// catalog cache.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateProductInput(input.Category, input.Discount, input.Variants); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Discount:       input.Discount,
		Category:       input.Category,
		Tag:            input.Tag,
		AvailableModel: input.AvailableModel,
		Variants:       buildVariants(input.Variants),
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))
	srv.invalidateCatalogCache(ctx)

	return product, nil
}

// UpdateProduct replaces a product's fields and variant set and invalidates
// the catalog cache.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := validateProductInput(input.Category, input.Discount, input.Variants); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:             id,
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Discount:       input.Discount,
		Category:       input.Category,
		Tag:            input.Tag,
		AvailableModel: input.AvailableModel,
		Variants:       buildVariants(input.Variants),
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", id))
	srv.invalidateCatalogCache(ctx)

	// Reload so the caller sees generated variant IDs and timestamps.
	updated, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated product")
	}
	applyRating(updated)

	return updated, nil
}

// DeleteProduct removes a product and invalidates the catalog cache.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))
	srv.invalidateCatalogCache(ctx)

	return nil
}

// invalidateCatalogCache drops every cached catalog payload, listings and
// recommendations alike. Failures are logged, not returned: the entry TTL
// bounds how long stale data can survive a missed invalidation.
func (srv *productService) invalidateCatalogCache(ctx context.Context) {
	if err := srv.cache.DeleteByPattern(ctx, catalogCachePrefix+"*"); err != nil {
		srv.log(ctx).Warn("Catalog cache invalidation failed", slog.Any("error", err))
	}
}

// validateProductInput enforces the enum and range rules the database cannot
// express in a user-readable way.
func validateProductInput(category entity.Category, discount int, variants []usecase.VariantInput) error {
	if !category.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown category")
	}
	if discount < 0 || discount > 100 {
		return domainerrors.ErrValidationFailed.WrapMessage("discount must be between 0 and 100")
	}
	if len(variants) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("at least one variant is required")
	}
	for _, variant := range variants {
		if !variant.PhoneModel.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown phone model")
		}
		if variant.Stock < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("variant stock must not be negative")
		}
	}

	return nil
}

// buildVariants maps variant inputs to entities, generating an opaque SKU
// for each.
func buildVariants(inputs []usecase.VariantInput) []*entity.ProductVariant {
	variants := make([]*entity.ProductVariant, 0, len(inputs))
	for _, input := range inputs {
		variants = append(variants, &entity.ProductVariant{
			Color:      input.Color,
			Stock:      input.Stock,
			Image:      input.Image,
			PhoneModel: input.PhoneModel,
			SKU:        generateSKU(),
		})
	}

	return variants
}

// generateSKU produces an opaque unique SKU string.
func generateSKU() string {
	return "SNP-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
}
