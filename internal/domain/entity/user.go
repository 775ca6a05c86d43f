// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing a registered
// shopper or administrator account.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`      // The user's login identifier.
	Name         string    `json:"name"`       // Display name.
	Role         Role      `json:"role"`       // Access role, customer or admin.
	PasswordHash string    `json:"-"`          // Bcrypt hash of the user's password. Never serialized.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}
