// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartEntryNotFound is returned when a cart entry is not found.
	ErrCartEntryNotFound = errors.New("cart entry not found")
	// ErrStockExceeded is returned when an add or update would push the
	// entry's quantity above the variant's available stock.
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")
)

// CartRepository defines the interface for cart-related database operations.
// Stock guarding happens inside the store: AddItem and UpdateQuantity are
// single conditional statements, so the check and the write cannot race.
type CartRepository interface {
	// AddItem inserts a cart entry or merges the quantity into an existing
	// (user, variant) entry. Returns ErrStockExceeded when the resulting
	// quantity would exceed the variant's stock.
	AddItem(ctx context.Context, entry *entity.CartEntry) error

	// UpdateQuantity sets the quantity of an existing entry. Returns
	// ErrCartEntryNotFound when no entry exists and ErrStockExceeded when
	// the requested quantity exceeds the variant's stock.
	UpdateQuantity(ctx context.Context, userID, variantID uuid.UUID, quantity int) error

	// RemoveItem deletes the (user, variant) entry.
	RemoveItem(ctx context.Context, userID, variantID uuid.UUID) error

	// FindEntriesByUser retrieves all cart entries for a user with their
	// variants and owning products loaded.
	FindEntriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error)
}
