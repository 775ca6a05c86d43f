package impl

import (
	"context"
	"strings"
	"testing"

	"snapcase/internal/domain/entity"
	domainerrors "snapcase/internal/domain/errors"
	"snapcase/internal/domain/repository"
	mockRepo "snapcase/internal/mocks/repository"
	"snapcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductService(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository, *mockRepo.MockCache) {
	t.Helper()

	productRepo := &mockRepo.MockProductRepository{}
	cache := &mockRepo.MockCache{}
	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Cache:       cache,
		Logger:      newDiscardLogger(),
	})

	return service, productRepo, cache
}

func validCreateInput() *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		Name:           "Aurora Leather Case",
		Description:    "Full-grain leather",
		Price:          2990,
		Discount:       15,
		Category:       entity.CategoryLeather,
		Tag:            entity.TagNew,
		AvailableModel: "iPhone 15 series",
		Variants: []usecase.VariantInput{
			{Color: "brown", Stock: 20, PhoneModel: entity.PhoneModelIphone15},
			{Color: "black", Stock: 10, PhoneModel: entity.PhoneModelIphone15Pro},
		},
	}
}

func TestProductService_CreateProduct_InvalidatesCache(t *testing.T) {
	service, productRepo, cache := createTestProductService(t)
	ctx := context.Background()

	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			product.ID = uuid.New()
		}).
		Return(nil).Once()
	cache.On("DeleteByPattern", ctx, "catalog:*").Return(nil).Once()

	product, err := service.CreateProduct(ctx, validCreateInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	require.Len(t, product.Variants, 2)
	for _, variant := range product.Variants {
		assert.True(t, strings.HasPrefix(variant.SKU, "SNP-"))
	}
	cache.AssertExpectations(t)
}

func TestProductService_CreateProduct_GeneratesUniqueSKUs(t *testing.T) {
	service, productRepo, cache := createTestProductService(t)
	ctx := context.Background()

	productRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	cache.On("DeleteByPattern", ctx, "catalog:*").Return(nil).Once()

	product, err := service.CreateProduct(ctx, validCreateInput())

	require.NoError(t, err)
	assert.NotEqual(t, product.Variants[0].SKU, product.Variants[1].SKU)
}

func TestProductService_CreateProduct_RejectsUnknownCategory(t *testing.T) {
	service, productRepo, _ := createTestProductService(t)

	input := validCreateInput()
	input.Category = entity.Category("VINYL")

	_, err := service.CreateProduct(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	productRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_RejectsOutOfRangeDiscount(t *testing.T) {
	service, _, _ := createTestProductService(t)

	input := validCreateInput()
	input.Discount = 120

	_, err := service.CreateProduct(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_CreateProduct_RequiresVariants(t *testing.T) {
	service, _, _ := createTestProductService(t)

	input := validCreateInput()
	input.Variants = nil

	_, err := service.CreateProduct(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_DeleteProduct_InvalidatesCache(t *testing.T) {
	service, productRepo, cache := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	productRepo.On("Delete", ctx, productID).Return(nil).Once()
	cache.On("DeleteByPattern", ctx, "catalog:*").Return(nil).Once()

	err := service.DeleteProduct(ctx, productID)

	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	service, productRepo, cache := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	productRepo.On("Delete", ctx, productID).Return(repository.ErrProductNotFound).Once()

	err := service.DeleteProduct(ctx, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	// A failed mutation must not drop valid cache entries.
	cache.AssertExpectations(t)
}

func TestProductService_DeleteProduct_SurvivesInvalidationFailure(t *testing.T) {
	service, productRepo, cache := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	productRepo.On("Delete", ctx, productID).Return(nil).Once()
	cache.On("DeleteByPattern", ctx, "catalog:*").Return(assert.AnError).Once()

	// Invalidation failures are absorbed; the TTL bounds staleness.
	err := service.DeleteProduct(ctx, productID)

	require.NoError(t, err)
}
