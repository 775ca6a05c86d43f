package impl

import (
	"context"
	"log/slog"

	deliverycontext "snapcase/internal/delivery/context"
	"snapcase/internal/domain/entity"
	domainerrors "snapcase/internal/domain/errors"
	"snapcase/internal/domain/repository"
	"snapcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart adds a variant to the user's cart, merging quantities on repeat
// adds. The stock guard lives in the repository's conditional write.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) error {
	if input.Quantity < 1 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	entry := &entity.CartEntry{
		UserID:    input.UserID,
		VariantID: input.VariantID,
		Quantity:  input.Quantity,
	}

	if err := srv.cartRepo.AddItem(ctx, entry); err != nil {
		switch {
		case errors.Is(err, repository.ErrVariantNotFound):
			return domainerrors.ErrVariantNotFound
		case errors.Is(err, repository.ErrStockExceeded):
			srv.log(ctx).Info("Cart add rejected by stock guard", slog.Any("variantID", input.VariantID), slog.Int("quantity", input.Quantity))

			return domainerrors.ErrStockConflict
		default:
			srv.log(ctx).Error("Failed to add cart entry", slog.Any("variantID", input.VariantID), slog.Any("error", err))

			return errors.Wrap(err, "failed to add cart entry")
		}
	}

	return nil
}

// UpdateCartItem sets the quantity of an existing cart entry.
func (srv *cartService) UpdateCartItem(ctx context.Context, input *usecase.UpdateCartItemInput) error {
	if input.Quantity < 1 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, input.UserID, input.VariantID, input.Quantity); err != nil {
		switch {
		case errors.Is(err, repository.ErrCartEntryNotFound):
			return domainerrors.ErrCartEntryNotFound
		case errors.Is(err, repository.ErrVariantNotFound):
			return domainerrors.ErrVariantNotFound
		case errors.Is(err, repository.ErrStockExceeded):
			return domainerrors.ErrStockConflict
		default:
			srv.log(ctx).Error("Failed to update cart entry", slog.Any("variantID", input.VariantID), slog.Any("error", err))

			return errors.Wrap(err, "failed to update cart entry")
		}
	}

	return nil
}

// RemoveFromCart deletes the (user, variant) entry.
func (srv *cartService) RemoveFromCart(ctx context.Context, userID, variantID uuid.UUID) error {
	if err := srv.cartRepo.RemoveItem(ctx, userID, variantID); err != nil {
		if errors.Is(err, repository.ErrCartEntryNotFound) {
			return domainerrors.ErrCartEntryNotFound
		}
		srv.log(ctx).Error("Failed to remove cart entry", slog.Any("variantID", variantID), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove cart entry")
	}

	return nil
}

// GetCart returns the user's cart entries with the discounted subtotal.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	entries, err := srv.cartRepo.FindEntriesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load cart", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load cart entries")
	}

	return &usecase.CartOutput{
		Entries:  entries,
		Subtotal: cartSubtotal(entries),
	}, nil
}

// cartSubtotal sums discounted line prices in the smallest currency unit.
// Integer division truncates each line, matching per-line display rounding.
func cartSubtotal(entries []*entity.CartEntry) int {
	subtotal := 0
	for _, entry := range entries {
		if entry.Product == nil {
			continue
		}
		linePrice := entry.Product.Price * (100 - entry.Product.Discount) / 100

		subtotal += linePrice * entry.Quantity
	}

	return subtotal
}
