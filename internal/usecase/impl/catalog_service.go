package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"snapcase/config"
	deliverycontext "snapcase/internal/delivery/context"
	"snapcase/internal/domain/entity"
	domainerrors "snapcase/internal/domain/errors"
	"snapcase/internal/domain/repository"
	"snapcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPage   = 1
	defaultLimit  = 12
	maxLimit      = 100
	defaultSortBy = "createdAt"
	defaultOrder  = "desc"
)

// validSortBy whitelists the listing sort keys accepted from requests.
// Sorting by rating is not offered: the average is derived per product at
// read time, never stored as a column, so a "reviews" sort (and any other
// unknown key) falls back to creation time. Known limitation.
var validSortBy = map[string]bool{
	"createdAt": true,
	"price":     true,
	"name":      true,
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	cache       repository.Cache
	cacheTTL    time.Duration
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ReviewRepo  repository.ReviewRepository
	Cache       repository.Cache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService. It receives all dependencies as interfaces.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	cacheTTL := time.Duration(0)
	if params.Config != nil && params.Config.Cache != nil {
		cacheTTL = params.Config.Cache.TTL
	}

	return &catalogService{
		productRepo: params.ProductRepo,
		reviewRepo:  params.ReviewRepo,
		cache:       params.Cache,
		cacheTTL:    cacheTTL,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts executes a catalog listing query through the result cache.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	normalized := normalizeListInput(input)
	key := productListCacheKey(normalized)

	if cached, err := srv.cache.Get(ctx, key); err == nil {
		var page usecase.ProductPage
		if unmarshalErr := json.Unmarshal([]byte(cached), &page); unmarshalErr == nil {
			srv.log(ctx).Debug("Catalog cache hit", slog.String("key", key))

			return &page, nil
		}
		// A corrupt entry falls through to the store and gets overwritten.
		srv.log(ctx).Warn("Discarding corrupt catalog cache entry", slog.String("key", key))
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		// Cache failures degrade to store reads, they never fail the request.
		srv.log(ctx).Warn("Catalog cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	query := repository.ProductQuery{
		Filter: buildListFilter(normalized),
		SortBy: normalized.SortBy,
		Order:  normalized.Order,
		Offset: (normalized.Page - 1) * normalized.Limit,
		Limit:  normalized.Limit,
	}

	products, total, err := srv.productRepo.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to search products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search products")
	}

	applyRatings(products)
	trimToListingVariant(products)

	page := &usecase.ProductPage{
		Products:   products,
		Total:      total,
		Page:       normalized.Page,
		Limit:      normalized.Limit,
		TotalPages: totalPages(total, normalized.Limit),
	}

	srv.storePage(ctx, key, page)

	return page, nil
}

// GetProduct retrieves a single product with its derived rating fields.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to find product", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	applyRating(product)

	return product, nil
}

// GetProductReviews retrieves all reviews for a product, newest first.
func (srv *catalogService) GetProductReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		srv.log(ctx).Error("Failed to find product reviews", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find product reviews")
	}

	return reviews, nil
}

// storePage writes a listing page into the result cache. Failures are logged
// and swallowed; the next identical query will simply hit the store again.
func (srv *catalogService) storePage(ctx context.Context, key string, page *usecase.ProductPage) {
	raw, err := json.Marshal(page)
	if err != nil {
		srv.log(ctx).Warn("Failed to marshal catalog page for caching", slog.Any("error", err))

		return
	}

	if err := srv.cache.Set(ctx, key, string(raw), srv.cacheTTL); err != nil {
		srv.log(ctx).Warn("Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// normalizeListInput fills defaults and clamps out-of-range values so that
// equivalent queries derive the same cache key.
func normalizeListInput(input *usecase.ListProductsInput) *usecase.ListProductsInput {
	normalized := &usecase.ListProductsInput{}
	if input != nil {
		*normalized = *input
	}

	if normalized.Page < 1 {
		normalized.Page = defaultPage
	}
	if normalized.Limit < 1 {
		normalized.Limit = defaultLimit
	}
	if normalized.Limit > maxLimit {
		normalized.Limit = maxLimit
	}
	if !validSortBy[normalized.SortBy] {
		normalized.SortBy = defaultSortBy
	}
	if normalized.Order != "asc" && normalized.Order != "desc" {
		normalized.Order = defaultOrder
	}

	// Canonical casing and spacing keep near-identical queries on one cache
	// key. Lower-casing the search term is safe: name matching is
	// case-insensitive and the label matchers lower-case internally.
	normalized.Search = strings.ToLower(strings.TrimSpace(normalized.Search))

	// Explicit facet values are stored upper-cased, matching the enum casing.
	normalized.Category = strings.ToUpper(strings.TrimSpace(normalized.Category))
	normalized.PhoneModel = strings.ToUpper(strings.TrimSpace(normalized.PhoneModel))

	return normalized
}

// buildListFilter plans the filter tree of a listing query. A free-text
// search takes priority and the explicit facet parameters are ignored;
// without one, the facet parameters apply as independent equality filters.
func buildListFilter(input *usecase.ListProductsInput) repository.ProductFilter {
	if input.Search != "" {
		return buildSearchFilter(input.Search)
	}

	var filters []repository.ProductFilter
	if category := entity.Category(input.Category); category.IsValid() {
		filters = append(filters, repository.CategoryIn{Values: []entity.Category{category}})
	}
	if phoneModel := entity.PhoneModel(input.PhoneModel); phoneModel.IsValid() {
		filters = append(filters, repository.PhoneModelIn{Values: []entity.PhoneModel{phoneModel}})
	}

	switch len(filters) {
	case 0:
		return nil
	case 1:
		return filters[0]
	default:
		return repository.And{Filters: filters}
	}
}

// buildSearchFilter plans the filter tree of a free-text search. The term is
// matched against product names and against the label tables of the category
// and phone model facets; any facet labels it touches widen the search as
// alternatives, so "iphone 15 case" style queries reach products whose name
// never mentions either term.
func buildSearchFilter(search string) repository.ProductFilter {
	if search == "" {
		return nil
	}

	filters := []repository.ProductFilter{
		repository.NameContains{Value: search},
	}

	if categories := entity.MatchCategories(search); len(categories) > 0 {
		filters = append(filters, repository.CategoryIn{Values: categories})
	}
	if phoneModels := entity.MatchPhoneModels(search); len(phoneModels) > 0 {
		filters = append(filters, repository.PhoneModelIn{Values: phoneModels})
	}

	if len(filters) == 1 {
		return filters[0]
	}

	return repository.Or{Filters: filters}
}

// totalPages computes the pagination envelope's page count.
func totalPages(total int64, limit int) int {
	if total == 0 || limit <= 0 {
		return 0
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return int(pages)
}
