package usecase

import (
	"context"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for wishlist operations. The
// wishlist holds whole products, not variants; adding the same product twice
// is rejected.
type WishlistUsecase interface {
	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) error
	RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error)
}
