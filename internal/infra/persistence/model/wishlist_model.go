package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntryModel is the GORM-specific struct for the 'wishlist_entries' table.
// The (user_id, product_id) unique index enforces at most one entry per pair.
type WishlistEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistEntryModel) TableName() string {
	return "wishlist_entries"
}
