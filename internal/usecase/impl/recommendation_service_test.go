package impl

import (
	"context"
	"testing"

	"snapcase/internal/domain/entity"
	"snapcase/internal/domain/repository"
	mockRepo "snapcase/internal/mocks/repository"
	"snapcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recommendationServiceFixtures struct {
	service      usecase.RecommendationUsecase
	productRepo  *mockRepo.MockProductRepository
	reviewRepo   *mockRepo.MockReviewRepository
	cartRepo     *mockRepo.MockCartRepository
	wishlistRepo *mockRepo.MockWishlistRepository
	cache        *mockRepo.MockCache
}

func createTestRecommendationService(t *testing.T) recommendationServiceFixtures {
	t.Helper()

	productRepo := &mockRepo.MockProductRepository{}
	reviewRepo := &mockRepo.MockReviewRepository{}
	cartRepo := &mockRepo.MockCartRepository{}
	wishlistRepo := &mockRepo.MockWishlistRepository{}
	cache := &mockRepo.MockCache{}

	service := NewRecommendationService(RecommendationServiceParams{
		ProductRepo:  productRepo,
		ReviewRepo:   reviewRepo,
		CartRepo:     cartRepo,
		WishlistRepo: wishlistRepo,
		Cache:        cache,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return recommendationServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		reviewRepo:   reviewRepo,
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
		cache:        cache,
	}
}

func TestRecommendationService_NoActivityFallsBackToRecent(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cache.On("Get", ctx, recommendationCacheKey(userID)).Return("", repository.ErrCacheMiss).Once()
	fx.reviewRepo.On("FindByUser", ctx, userID).Return([]*entity.Review{}, nil).Once()
	fx.cartRepo.On("FindEntriesByUser", ctx, userID).Return([]*entity.CartEntry{}, nil).Once()
	fx.wishlistRepo.On("FindByUser", ctx, userID).Return([]*entity.WishlistEntry{}, nil).Once()

	recent := []*entity.Product{{Name: "Newest Case"}}
	fx.productRepo.On("FindRecent", ctx, 12).Return(recent, nil).Once()
	fx.cache.On("Set", ctx, recommendationCacheKey(userID), mock.Anything, mock.Anything).Return(nil).Once()

	output, err := fx.service.GetRecommendations(ctx, userID)

	require.NoError(t, err)
	require.Len(t, output.Products, 1)
	assert.Equal(t, 1, output.Total)
	assert.Equal(t, fallbackMessage, output.Message)
	fx.productRepo.AssertExpectations(t)
}

func TestRecommendationService_DerivesFacetsAndExcludesOwned(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()

	cartedProduct := &entity.Product{
		ID:       uuid.New(),
		Category: entity.CategoryLeather,
		Variants: []*entity.ProductVariant{{PhoneModel: entity.PhoneModelIphone15}},
	}

	fx.cache.On("Get", ctx, recommendationCacheKey(userID)).Return("", repository.ErrCacheMiss).Once()
	fx.reviewRepo.On("FindByUser", ctx, userID).Return([]*entity.Review{}, nil).Once()
	fx.cartRepo.On("FindEntriesByUser", ctx, userID).Return([]*entity.CartEntry{
		{Product: cartedProduct, Variant: cartedProduct.Variants[0]},
	}, nil).Once()
	fx.wishlistRepo.On("FindByUser", ctx, userID).Return([]*entity.WishlistEntry{}, nil).Once()

	var capturedCategories []entity.Category
	var capturedModels []entity.PhoneModel
	var capturedExcludes []uuid.UUID
	fx.productRepo.On("FindByFacets", ctx, mock.Anything, mock.Anything, mock.Anything, 12).
		Run(func(args mock.Arguments) {
			capturedCategories = args.Get(1).([]entity.Category)
			capturedModels = args.Get(2).([]entity.PhoneModel)
			capturedExcludes = args.Get(3).([]uuid.UUID)
		}).
		Return([]*entity.Product{{Name: "Similar Case"}}, nil).Once()
	fx.cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	output, err := fx.service.GetRecommendations(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, output.Message)
	require.Len(t, output.Products, 1)
	assert.Equal(t, 1, output.Total)

	assert.Equal(t, []entity.Category{entity.CategoryLeather}, capturedCategories)
	assert.Equal(t, []entity.PhoneModel{entity.PhoneModelIphone15}, capturedModels)
	// The carted product itself must never be recommended back.
	assert.Equal(t, []uuid.UUID{cartedProduct.ID}, capturedExcludes)
}

func TestRecommendationService_CacheHitSkipsSignals(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cache.On("Get", ctx, recommendationCacheKey(userID)).
		Return(`{"products":[{"name":"Cached Case"}]}`, nil).Once()

	output, err := fx.service.GetRecommendations(ctx, userID)

	require.NoError(t, err)
	require.Len(t, output.Products, 1)
	assert.Equal(t, "Cached Case", output.Products[0].Name)
	fx.reviewRepo.AssertExpectations(t)
	fx.cartRepo.AssertExpectations(t)
	fx.wishlistRepo.AssertExpectations(t)
}
