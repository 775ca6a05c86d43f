// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntry is a join row between a user and a product. At most one
// entry exists per (user, product) pair.
type WishlistEntry struct {
	ID        uuid.UUID `json:"id"`                // The Global Unique Identifier (GUID) for the wishlist entry.
	UserID    uuid.UUID `json:"user_id"`           // The owning user.
	ProductID uuid.UUID `json:"product_id"`        // The wished-for product.
	Product   *Product  `json:"product,omitempty"` // Loaded product, populated on wishlist reads.
	CreatedAt time.Time `json:"created_at"`        // Timestamp of when this entry was created.
}
