// Package model contains the GORM-specific structs mapping domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"size:255;not null;index"`
	Description    string    `gorm:"type:text"`
	Price          int       `gorm:"not null"`
	Discount       int       `gorm:"not null;default:0"`
	Category       string    `gorm:"size:32;not null;index"`
	Tag            string    `gorm:"size:32"`
	AvailableModel string    `gorm:"size:128"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	Variants []*ProductVariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews  []*ReviewModel         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel is the GORM-specific struct for the 'product_variants' table.
// Stock carries a CHECK constraint so the database rejects negative values
// even if application-level guards are bypassed.
type ProductVariantModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Color      string    `gorm:"size:64;not null"`
	Stock      int       `gorm:"not null;default:0;check:stock >= 0"`
	Image      string    `gorm:"size:512"`
	PhoneModel string    `gorm:"size:32;not null;index"`
	SKU        string    `gorm:"size:64;not null;uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}
