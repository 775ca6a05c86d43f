package model

import (
	"time"

	"github.com/google/uuid"
)

// CartEntryModel is the GORM-specific struct for the 'cart_entries' table.
// The (user_id, variant_id) unique index backs the merge-on-repeat-add
// upsert; at most one row exists per pair.
type CartEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_variant"`
	VariantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_variant"`
	Quantity  int       `gorm:"not null;check:quantity >= 1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Variant *ProductVariantModel `gorm:"foreignKey:VariantID"`
}

// TableName explicitly sets the table name for GORM.
func (CartEntryModel) TableName() string {
	return "cart_entries"
}
