// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartEntry is a join row between a user and a product variant with a
// quantity. At most one entry exists per (user, variant) pair; repeated adds
// merge into the quantity instead of duplicating the row.
type CartEntry struct {
	ID        uuid.UUID       `json:"id"`                // The Global Unique Identifier (GUID) for the cart entry.
	UserID    uuid.UUID       `json:"user_id"`           // The owning user.
	VariantID uuid.UUID       `json:"variant_id"`        // The variant in the cart.
	Quantity  int             `json:"quantity"`          // Requested quantity, always >= 1 and never above the variant's stock at write time.
	Variant   *ProductVariant `json:"variant,omitempty"` // Loaded variant, populated on cart reads.
	Product   *Product        `json:"product,omitempty"` // Loaded owning product, populated on cart reads.
	CreatedAt time.Time       `json:"created_at"`        // Timestamp of when this entry was created.
	UpdatedAt time.Time       `json:"updated_at"`        // Timestamp of the last quantity change.
}
