package impl

import (
	"context"
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

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	reviewRepo  *mockRepo.MockReviewRepository
	cache       *mockRepo.MockCache
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	t.Helper()

	productRepo := &mockRepo.MockProductRepository{}
	reviewRepo := &mockRepo.MockReviewRepository{}
	factory := &mockRepo.MockRepositoryFactory{}
	txManager := &mockRepo.MockTransactionManager{Factory: factory}
	cache := &mockRepo.MockCache{}

	service := NewReviewService(ReviewServiceParams{
		TxManager: txManager,
		Cache:     cache,
		Logger:    newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		cache:       cache,
	}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	productID := uuid.New()

	input := &usecase.CreateReviewInput{
		ProductID: productID,
		UserID:    uuid.New(),
		Message:   "Great fit, solid protection.",
		Stars:     5,
	}

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil).Once()
	fx.factory.On("NewProductRepository").Return(fx.productRepo).Once()
	fx.factory.On("NewReviewRepository").Return(fx.reviewRepo).Once()
	fx.productRepo.On("FindByID", ctx, productID).Return(&entity.Product{ID: productID}, nil).Once()
	fx.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(args mock.Arguments) {
			review := args.Get(1).(*entity.Review)
			review.ID = uuid.New()
		}).
		Return(nil).Once()
	fx.cache.On("DeleteByPattern", ctx, "catalog:*").Return(nil).Once()

	review, err := fx.service.CreateReview(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, review.ID)
	assert.Equal(t, 5, review.Stars)
	fx.cache.AssertExpectations(t)
}

func TestReviewService_CreateReview_RejectsOutOfRangeStars(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	for _, stars := range []int{0, 6, -1} {
		_, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{
			ProductID: uuid.New(),
			UserID:    uuid.New(),
			Message:   "n/a",
			Stars:     stars,
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
	// No transaction may have started for invalid input.
	fx.txManager.AssertExpectations(t)
}

func TestReviewService_CreateReview_ProductMissing(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil).Once()
	fx.factory.On("NewProductRepository").Return(fx.productRepo).Once()
	fx.factory.On("NewReviewRepository").Return(fx.reviewRepo).Once()
	fx.productRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound).Once()

	_, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{
		ProductID: productID,
		UserID:    uuid.New(),
		Message:   "n/a",
		Stars:     4,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	// A failed creation must not invalidate the cache.
	fx.cache.AssertExpectations(t)
}
