// Package impl contains the implementation of the application's business logic.
package impl

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"snapcase/internal/usecase"

	"github.com/google/uuid"
)

const (
	// catalogCachePrefix namespaces every catalog cache entry so mutations
	// can invalidate the whole family with one pattern.
	catalogCachePrefix = "catalog:"

	productListKeyPrefix    = catalogCachePrefix + "products:"
	recommendationKeyPrefix = catalogCachePrefix + "recs:"
)

// catalogKeyPayload is the canonical form of a listing query. Field order is
// fixed by the struct definition, so identical queries always serialize to
// identical bytes regardless of how the request spelled its parameters.
type catalogKeyPayload struct {
	Search     string `json:"search"`
	Category   string `json:"category"`
	PhoneModel string `json:"phoneModel"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	SortBy     string `json:"sortBy"`
	Order      string `json:"order"`
}

// productListCacheKey derives the cache key of a normalized listing query by
// hashing its canonical JSON form.
func productListCacheKey(input *usecase.ListProductsInput) string {
	payload := catalogKeyPayload{
		Search:     input.Search,
		Category:   input.Category,
		PhoneModel: input.PhoneModel,
		Page:       input.Page,
		Limit:      input.Limit,
		SortBy:     input.SortBy,
		Order:      input.Order,
	}

	// Marshaling a flat struct of strings and ints cannot fail.
	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)

	return productListKeyPrefix + hex.EncodeToString(sum[:])
}

// recommendationCacheKey derives the cache key of a user's recommendation
// list. Recommendations are cached per user, not per query.
func recommendationCacheKey(userID uuid.UUID) string {
	return recommendationKeyPrefix + userID.String()
}
