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

func createTestCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository) {
	t.Helper()

	cartRepo := &mockRepo.MockCartRepository{}
	service := NewCartService(CartServiceParams{
		CartRepo: cartRepo,
		Logger:   newDiscardLogger(),
	})

	return service, cartRepo
}

func TestCartService_AddToCart_Success(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	input := &usecase.AddToCartInput{
		UserID:    uuid.New(),
		VariantID: uuid.New(),
		Quantity:  2,
	}

	cartRepo.On("AddItem", ctx, mock.AnythingOfType("*entity.CartEntry")).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(*entity.CartEntry)
			assert.Equal(t, input.VariantID, entry.VariantID)
			assert.Equal(t, 2, entry.Quantity)
		}).
		Return(nil).Once()

	err := service.AddToCart(ctx, input)

	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestCartService_AddToCart_StockExceeded(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.On("AddItem", ctx, mock.AnythingOfType("*entity.CartEntry")).
		Return(repository.ErrStockExceeded).Once()

	err := service.AddToCart(ctx, &usecase.AddToCartInput{
		UserID:    uuid.New(),
		VariantID: uuid.New(),
		Quantity:  50,
	})

	assert.ErrorIs(t, err, domainerrors.ErrStockConflict)
}

func TestCartService_AddToCart_VariantMissing(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.On("AddItem", ctx, mock.AnythingOfType("*entity.CartEntry")).
		Return(repository.ErrVariantNotFound).Once()

	err := service.AddToCart(ctx, &usecase.AddToCartInput{
		UserID:    uuid.New(),
		VariantID: uuid.New(),
		Quantity:  1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrVariantNotFound)
}

func TestCartService_AddToCart_RejectsZeroQuantity(t *testing.T) {
	service, cartRepo := createTestCartService(t)

	err := service.AddToCart(context.Background(), &usecase.AddToCartInput{
		UserID:    uuid.New(),
		VariantID: uuid.New(),
		Quantity:  0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	cartRepo.AssertExpectations(t)
}

func TestCartService_UpdateCartItem_NotFound(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()
	userID, variantID := uuid.New(), uuid.New()

	cartRepo.On("UpdateQuantity", ctx, userID, variantID, 3).
		Return(repository.ErrCartEntryNotFound).Once()

	err := service.UpdateCartItem(ctx, &usecase.UpdateCartItemInput{
		UserID:    userID,
		VariantID: variantID,
		Quantity:  3,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCartEntryNotFound)
}

func TestCartService_UpdateCartItem_VariantGone(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()
	userID, variantID := uuid.New(), uuid.New()

	// An entry whose variant's product was removed from the catalog is
	// reported as a missing variant, not a stock conflict.
	cartRepo.On("UpdateQuantity", ctx, userID, variantID, 2).
		Return(repository.ErrVariantNotFound).Once()

	err := service.UpdateCartItem(ctx, &usecase.UpdateCartItemInput{
		UserID:    userID,
		VariantID: variantID,
		Quantity:  2,
	})

	assert.ErrorIs(t, err, domainerrors.ErrVariantNotFound)
}

func TestCartService_GetCart_ComputesDiscountedSubtotal(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	entries := []*entity.CartEntry{
		{
			Quantity: 2,
			Product:  &entity.Product{Price: 1000, Discount: 10},
		},
		{
			Quantity: 1,
			Product:  &entity.Product{Price: 2500, Discount: 0},
		},
	}
	cartRepo.On("FindEntriesByUser", ctx, userID).Return(entries, nil).Once()

	output, err := service.GetCart(ctx, userID)

	require.NoError(t, err)
	// 2 * (1000 * 90%) + 1 * 2500 = 1800 + 2500
	assert.Equal(t, 4300, output.Subtotal)
	assert.Len(t, output.Entries, 2)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	cartRepo.On("FindEntriesByUser", ctx, userID).Return([]*entity.CartEntry{}, nil).Once()

	output, err := service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Zero(t, output.Subtotal)
	assert.Empty(t, output.Entries)
}
