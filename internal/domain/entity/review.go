// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer review of a product. Reviews are immutable once
// created; there is no edit path. Stars range from 1 to 5 inclusive.
type Review struct {
	ID        uuid.UUID `json:"id"`                // The Global Unique Identifier (GUID) for the review.
	ProductID uuid.UUID `json:"product_id"`        // The product being reviewed.
	UserID    uuid.UUID `json:"user_id"`           // The reviewer's user ID.
	Message   string    `json:"message"`           // Review text.
	Stars     int       `json:"stars"`             // Star rating, 1-5 inclusive.
	Product   *Product  `json:"product,omitempty"` // Loaded product, populated for recommendation facet derivation.
	CreatedAt time.Time `json:"created_at"`        // Timestamp of when this review was created.
}
