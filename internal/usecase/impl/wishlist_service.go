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

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for wishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToWishlist adds a product to the user's wishlist.
func (srv *wishlistService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) error {
	entry := &entity.WishlistEntry{
		UserID:    userID,
		ProductID: productID,
	}

	if err := srv.wishlistRepo.Add(ctx, entry); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateWishlistEntry):
			return domainerrors.ErrWishlistDuplicate
		case errors.Is(err, repository.ErrProductNotFound):
			return domainerrors.ErrProductNotFound
		default:
			srv.log(ctx).Error("Failed to add wishlist entry", slog.Any("productID", productID), slog.Any("error", err))

			return errors.Wrap(err, "failed to add wishlist entry")
		}
	}

	return nil
}

// RemoveFromWishlist deletes the (user, product) entry.
func (srv *wishlistService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrWishlistEntryNotFound) {
			return domainerrors.ErrWishlistEntryNotFound
		}
		srv.log(ctx).Error("Failed to remove wishlist entry", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove wishlist entry")
	}

	return nil
}

// GetWishlist returns the user's wishlist with products and their derived
// ratings loaded.
func (srv *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error) {
	entries, err := srv.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load wishlist", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load wishlist entries")
	}

	for _, entry := range entries {
		applyRating(entry.Product)
	}

	return entries, nil
}
