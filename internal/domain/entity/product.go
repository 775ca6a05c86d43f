// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable phone case listed in the catalog. It owns its
// variants; reviews reference it but are managed through their own slice.
type Product struct {
	ID             uuid.UUID         `json:"id"`              // The Global Unique Identifier (GUID) for the product.
	Name           string            `json:"name"`            // Display name shown in listings and detail pages.
	Description    string            `json:"description"`     // Free-text marketing description.
	Price          int               `json:"price"`           // Price in the smallest currency unit (cents).
	Discount       int               `json:"discount"`        // Discount percentage, 0-100.
	Category       Category          `json:"category"`        // Case-type facet, one of the fixed Category enumeration.
	Tag            Tag               `json:"tag"`             // Merchandising tag (trending, new, ...).
	AvailableModel string            `json:"available_model"` // Human-readable compatibility descriptor, e.g. "iPhone 15 series".
	Variants       []*ProductVariant `json:"variants"`        // Purchasable variants. Listings carry only the first; detail views carry all.
	AvgStars       float64           `json:"avg_stars"`       // Average review stars, 2 decimals. Derived at read time, never persisted.
	ReviewCount    int               `json:"review_count"`    // Number of reviews. Derived at read time, never persisted.
	Reviews        []*Review         `json:"-"`               // Loaded review set used to compute the derived fields above.
	CreatedAt      time.Time         `json:"created_at"`      // Timestamp of when this product was created.
	UpdatedAt      time.Time         `json:"updated_at"`      // Timestamp of the last modification.
}

// ProductVariant is a concrete purchasable SKU of a product: a specific
// color/phone-model combination with its own stock count.
type ProductVariant struct {
	ID         uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the variant.
	ProductID  uuid.UUID  `json:"product_id"`  // Foreign key to the owning product.
	Color      string     `json:"color"`       // Variant color name.
	Stock      int        `json:"stock"`       // Units available. Never negative; cart operations are guarded against it.
	Image      string     `json:"image"`       // Image reference for this variant.
	PhoneModel PhoneModel `json:"phone_model"` // Compatible phone model, one of the fixed PhoneModel enumeration.
	SKU        string     `json:"sku"`         // Generated opaque unique SKU string.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of when this variant was created.
	UpdatedAt  time.Time  `json:"updated_at"`  // Timestamp of the last modification.
}
