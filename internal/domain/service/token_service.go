// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"time"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the identity information extracted from a validated token.
type Claims struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles entity.Roles) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks the validity of an access token string and
	// returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
