package impl

import (
	"math"

	"snapcase/internal/domain/entity"
)

// applyRating fills a product's derived rating fields from its loaded
// reviews. A product without reviews has an average of 0, not NaN.
func applyRating(product *entity.Product) {
	if product == nil {
		return
	}

	product.ReviewCount = len(product.Reviews)
	if product.ReviewCount == 0 {
		product.AvgStars = 0
		return
	}

	sum := 0
	for _, review := range product.Reviews {
		sum += review.Stars
	}

	avg := float64(sum) / float64(product.ReviewCount)
	// Round to two decimals.
	product.AvgStars = math.Round(avg*100) / 100
}

// applyRatings fills derived rating fields for a product list.
func applyRatings(products []*entity.Product) {
	for _, product := range products {
		applyRating(product)
	}
}

// trimToListingVariant reduces each product's variant slice to the
// representative first variant for listing payloads. Detail views keep the
// full set.
func trimToListingVariant(products []*entity.Product) {
	for _, product := range products {
		if len(product.Variants) > 1 {
			product.Variants = product.Variants[:1]
		}
	}
}
