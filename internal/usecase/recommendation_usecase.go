package usecase

import (
	"context"

	"snapcase/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationOutput carries the recommended products for a user. Message
// is set only when the user has no activity signals and the fallback list of
// recent products is returned instead.
type RecommendationOutput struct {
	Products []*entity.Product `json:"products"`
	Total    int               `json:"total"`
	Message  string            `json:"message,omitempty"`
}

// RecommendationUsecase defines the interface for personalized product
// recommendations derived from a user's reviews, cart and wishlist.
type RecommendationUsecase interface {
	// GetRecommendations returns products sharing category or phone model
	// facets with the user's activity, excluding products the user already
	// interacted with. Users without activity receive the newest products.
	GetRecommendations(ctx context.Context, userID uuid.UUID) (*RecommendationOutput, error)
}
