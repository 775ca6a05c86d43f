// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for wishlist persistence.
var (
	// ErrWishlistEntryNotFound is returned when a wishlist entry is not found.
	ErrWishlistEntryNotFound = errors.New("wishlist entry not found")
	// ErrDuplicateWishlistEntry is returned when the (user, product) pair
	// already exists.
	ErrDuplicateWishlistEntry = errors.New("wishlist entry already exists")
)

// WishlistRepository defines the interface for wishlist-related database operations.
type WishlistRepository interface {
	// Add persists a new wishlist entry.
	Add(ctx context.Context, entry *entity.WishlistEntry) error

	// Remove deletes the (user, product) entry.
	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// FindByUser retrieves all wishlist entries for a user with their
	// products loaded.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error)
}
