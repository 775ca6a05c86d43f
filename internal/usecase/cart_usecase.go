package usecase

import (
	"context"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddToCartInput defines the data required to add a variant to the cart.
type AddToCartInput struct {
	UserID    uuid.UUID
	VariantID uuid.UUID
	Quantity  int
}

// UpdateCartItemInput defines the data required to set a cart entry's quantity.
type UpdateCartItemInput struct {
	UserID    uuid.UUID
	VariantID uuid.UUID
	Quantity  int
}

// --- Output DTOs ---

// CartOutput is the user's full cart with the discounted subtotal in the
// smallest currency unit.
type CartOutput struct {
	Entries  []*entity.CartEntry `json:"entries"`
	Subtotal int                 `json:"subtotal"`
}

// CartUsecase defines the interface for shopping cart operations. Quantity
// changes are guarded against variant stock at the persistence layer, so
// concurrent requests cannot oversell.
type CartUsecase interface {
	AddToCart(ctx context.Context, input *AddToCartInput) error
	UpdateCartItem(ctx context.Context, input *UpdateCartItemInput) error
	RemoveFromCart(ctx context.Context, userID, variantID uuid.UUID) error
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)
}
