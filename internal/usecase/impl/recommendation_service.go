package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"snapcase/config"
	deliverycontext "snapcase/internal/delivery/context"
	"snapcase/internal/domain/entity"
	"snapcase/internal/domain/repository"
	"snapcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recommendationLimit is the fixed size of a recommendation list.
const recommendationLimit = 12

// fallbackMessage is shown when the user has no activity to derive
// recommendations from and the newest products are returned instead.
const fallbackMessage = "目前沒有足夠的活動紀錄，先看看最新上架的商品"

// facetSignals aggregates the category and phone model facets of the
// products a user has interacted with, plus the product IDs themselves for
// exclusion.
type facetSignals struct {
	categories  map[entity.Category]bool
	phoneModels map[entity.PhoneModel]bool
	excludeIDs  map[uuid.UUID]bool
}

func newFacetSignals() *facetSignals {
	return &facetSignals{
		categories:  make(map[entity.Category]bool),
		phoneModels: make(map[entity.PhoneModel]bool),
		excludeIDs:  make(map[uuid.UUID]bool),
	}
}

// addProduct folds one interacted-with product into the signal sets.
func (s *facetSignals) addProduct(product *entity.Product) {
	if product == nil {
		return
	}

	s.excludeIDs[product.ID] = true
	if product.Category.IsValid() {
		s.categories[product.Category] = true
	}
	for _, variant := range product.Variants {
		if variant.PhoneModel.IsValid() {
			s.phoneModels[variant.PhoneModel] = true
		}
	}
}

func (s *facetSignals) empty() bool {
	return len(s.excludeIDs) == 0
}

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	productRepo  repository.ProductRepository
	reviewRepo   repository.ReviewRepository
	cartRepo     repository.CartRepository
	wishlistRepo repository.WishlistRepository
	cache        repository.Cache
	cacheTTL     time.Duration
	logger       *slog.Logger
}

// RecommendationServiceParams holds dependencies for recommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	ReviewRepo   repository.ReviewRepository
	CartRepo     repository.CartRepository
	WishlistRepo repository.WishlistRepository
	Cache        repository.Cache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	cacheTTL := time.Duration(0)
	if params.Config != nil && params.Config.Cache != nil {
		cacheTTL = params.Config.Cache.TTL
	}

	return &recommendationService{
		productRepo:  params.ProductRepo,
		reviewRepo:   params.ReviewRepo,
		cartRepo:     params.CartRepo,
		wishlistRepo: params.WishlistRepo,
		cache:        params.Cache,
		cacheTTL:     cacheTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetRecommendations returns products sharing facets with the user's
// activity. The result is cached per user under the catalog namespace, so
// product mutations invalidate recommendations together with listings.
func (srv *recommendationService) GetRecommendations(ctx context.Context, userID uuid.UUID) (*usecase.RecommendationOutput, error) {
	key := recommendationCacheKey(userID)

	if cached, err := srv.cache.Get(ctx, key); err == nil {
		var output usecase.RecommendationOutput
		if unmarshalErr := json.Unmarshal([]byte(cached), &output); unmarshalErr == nil {
			srv.log(ctx).Debug("Recommendation cache hit", slog.Any("userID", userID))

			return &output, nil
		}
		srv.log(ctx).Warn("Discarding corrupt recommendation cache entry", slog.String("key", key))
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		srv.log(ctx).Warn("Recommendation cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	signals, err := srv.collectSignals(ctx, userID)
	if err != nil {
		return nil, err
	}

	output, err := srv.buildRecommendations(ctx, signals)
	if err != nil {
		return nil, err
	}

	applyRatings(output.Products)
	trimToListingVariant(output.Products)
	srv.storeOutput(ctx, key, output)

	return output, nil
}

// collectSignals gathers the user's reviewed, carted and wished-for products.
func (srv *recommendationService) collectSignals(ctx context.Context, userID uuid.UUID) (*facetSignals, error) {
	signals := newFacetSignals()

	reviews, err := srv.reviewRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load user reviews for recommendations", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user reviews")
	}
	for _, review := range reviews {
		signals.addProduct(review.Product)
	}

	cartEntries, err := srv.cartRepo.FindEntriesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load cart for recommendations", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load cart entries")
	}
	for _, entry := range cartEntries {
		signals.addProduct(entry.Product)
		if entry.Variant != nil && entry.Variant.PhoneModel.IsValid() {
			signals.phoneModels[entry.Variant.PhoneModel] = true
		}
	}

	wishlistEntries, err := srv.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load wishlist for recommendations", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load wishlist entries")
	}
	for _, entry := range wishlistEntries {
		signals.addProduct(entry.Product)
	}

	return signals, nil
}

// buildRecommendations turns the signal sets into a product list, falling
// back to the newest products when there are no signals at all.
func (srv *recommendationService) buildRecommendations(ctx context.Context, signals *facetSignals) (*usecase.RecommendationOutput, error) {
	if signals.empty() {
		recent, err := srv.productRepo.FindRecent(ctx, recommendationLimit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load recent products")
		}

		return &usecase.RecommendationOutput{
			Products: recent,
			Total:    len(recent),
			Message:  fallbackMessage,
		}, nil
	}

	categories := make([]entity.Category, 0, len(signals.categories))
	for category := range signals.categories {
		categories = append(categories, category)
	}
	phoneModels := make([]entity.PhoneModel, 0, len(signals.phoneModels))
	for phoneModel := range signals.phoneModels {
		phoneModels = append(phoneModels, phoneModel)
	}
	excludeIDs := make([]uuid.UUID, 0, len(signals.excludeIDs))
	for id := range signals.excludeIDs {
		excludeIDs = append(excludeIDs, id)
	}

	products, err := srv.productRepo.FindByFacets(ctx, categories, phoneModels, excludeIDs, recommendationLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products by facets")
	}

	return &usecase.RecommendationOutput{Products: products, Total: len(products)}, nil
}

// storeOutput writes the recommendation list into the cache, logging and
// swallowing failures.
func (srv *recommendationService) storeOutput(ctx context.Context, key string, output *usecase.RecommendationOutput) {
	raw, err := json.Marshal(output)
	if err != nil {
		srv.log(ctx).Warn("Failed to marshal recommendations for caching", slog.Any("error", err))

		return
	}

	if err := srv.cache.Set(ctx, key, string(raw), srv.cacheTTL); err != nil {
		srv.log(ctx).Warn("Recommendation cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
