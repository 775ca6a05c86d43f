package impl

import (
	"context"
	"encoding/json"
	"testing"

	"snapcase/internal/domain/entity"
	"snapcase/internal/domain/repository"
	mockRepo "snapcase/internal/mocks/repository"
	"snapcase/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	reviewRepo  *mockRepo.MockReviewRepository
	cache       *mockRepo.MockCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	productRepo := &mockRepo.MockProductRepository{}
	reviewRepo := &mockRepo.MockReviewRepository{}
	cache := &mockRepo.MockCache{}

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		ReviewRepo:  reviewRepo,
		Cache:       cache,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		cache:       cache,
	}
}

func TestCatalogService_ListProducts_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	cached := &usecase.ProductPage{
		Products:   []*entity.Product{{Name: "Leather Case"}},
		Total:      1,
		Page:       1,
		Limit:      12,
		TotalPages: 1,
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	// A hit must be served without touching the store: no expectations are
	// registered on the product repository at all.
	fx.cache.On("Get", ctx, mock.AnythingOfType("string")).Return(string(raw), nil).Once()

	page, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Leather Case", page.Products[0].Name)
	fx.cache.AssertExpectations(t)
	fx.productRepo.AssertExpectations(t)
}

func TestCatalogService_ListProducts_CacheMissStoresResult(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.On("Get", ctx, mock.AnythingOfType("string")).Return("", repository.ErrCacheMiss).Once()

	products := []*entity.Product{
		{Name: "Clear Case", Reviews: []*entity.Review{{Stars: 4}, {Stars: 5}}},
	}
	fx.productRepo.On("Search", ctx, mock.AnythingOfType("repository.ProductQuery")).Return(products, int64(25), nil).Once()

	fx.cache.On("Set", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), newTestConfig().Cache.TTL).Return(nil).Once()

	page, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 12, page.Limit)
	// 25 products at 12 per page means three pages.
	assert.Equal(t, 3, page.TotalPages)
	assert.InDelta(t, 4.5, page.Products[0].AvgStars, 0.0001)
	fx.cache.AssertExpectations(t)
	fx.productRepo.AssertExpectations(t)
}

func TestCatalogService_ListProducts_NormalizesDefaults(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.On("Get", ctx, mock.Anything).Return("", repository.ErrCacheMiss).Once()
	fx.cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	var captured repository.ProductQuery
	fx.productRepo.On("Search", ctx, mock.AnythingOfType("repository.ProductQuery")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(repository.ProductQuery)
		}).
		Return([]*entity.Product{}, int64(0), nil).Once()

	_, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Page:   -3,
		Limit:  0,
		SortBy: "evil_column; DROP TABLE products",
		Order:  "sideways",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, captured.Offset)
	assert.Equal(t, 12, captured.Limit)
	assert.Equal(t, "createdAt", captured.SortBy)
	assert.Equal(t, "desc", captured.Order)
}

func TestCatalogService_ListProducts_PageBeyondRange(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.On("Get", ctx, mock.Anything).Return("", repository.ErrCacheMiss).Once()
	fx.cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	fx.productRepo.On("Search", ctx, mock.AnythingOfType("repository.ProductQuery")).
		Return([]*entity.Product{}, int64(5), nil).Once()

	page, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Page: 99})

	// An out-of-range page is an empty page, never an error.
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 99, page.Page)
}

func TestCatalogService_ListProducts_CacheFailureFallsThrough(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.On("Get", ctx, mock.Anything).Return("", assert.AnError).Once()
	fx.cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError).Once()
	fx.productRepo.On("Search", ctx, mock.AnythingOfType("repository.ProductQuery")).
		Return([]*entity.Product{{Name: "Rugged Case"}}, int64(1), nil).Once()

	page, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{})

	require.NoError(t, err)
	require.Len(t, page.Products, 1)
}

func TestBuildSearchFilter_WidensAcrossFacets(t *testing.T) {
	filter := buildSearchFilter("iphone 15")

	or, ok := filter.(repository.Or)
	require.True(t, ok)
	// Name match plus the phone model facet; "iphone 15" touches no
	// category label.
	require.Len(t, or.Filters, 2)

	name, ok := or.Filters[0].(repository.NameContains)
	require.True(t, ok)
	assert.Equal(t, "iphone 15", name.Value)

	phoneModels, ok := or.Filters[1].(repository.PhoneModelIn)
	require.True(t, ok)
	assert.Len(t, phoneModels.Values, 3)
}

func TestBuildSearchFilter_CategoryTerm(t *testing.T) {
	filter := buildSearchFilter("case")

	or, ok := filter.(repository.Or)
	require.True(t, ok)
	require.Len(t, or.Filters, 2)

	categories, ok := or.Filters[1].(repository.CategoryIn)
	require.True(t, ok)
	assert.Len(t, categories.Values, 9)
	assert.NotContains(t, categories.Values, entity.CategoryMagsafe)
}

func TestBuildSearchFilter_NameOnly(t *testing.T) {
	filter := buildSearchFilter("zebra print")

	name, ok := filter.(repository.NameContains)
	require.True(t, ok)
	assert.Equal(t, "zebra print", name.Value)
}

func TestBuildSearchFilter_Empty(t *testing.T) {
	assert.Nil(t, buildSearchFilter(""))
}

func TestBuildListFilter_ExplicitFacets(t *testing.T) {
	filter := buildListFilter(&usecase.ListProductsInput{Category: "LEATHER", PhoneModel: "IPHONE_15"})

	and, ok := filter.(repository.And)
	require.True(t, ok)
	require.Len(t, and.Filters, 2)

	categories, ok := and.Filters[0].(repository.CategoryIn)
	require.True(t, ok)
	assert.Equal(t, []entity.Category{entity.CategoryLeather}, categories.Values)

	phoneModels, ok := and.Filters[1].(repository.PhoneModelIn)
	require.True(t, ok)
	assert.Equal(t, []entity.PhoneModel{entity.PhoneModelIphone15}, phoneModels.Values)
}

func TestBuildListFilter_SearchOverridesFacets(t *testing.T) {
	filter := buildListFilter(&usecase.ListProductsInput{Search: "zebra print", Category: "LEATHER"})

	// Free-text search wins; the explicit facet never reaches the store.
	name, ok := filter.(repository.NameContains)
	require.True(t, ok)
	assert.Equal(t, "zebra print", name.Value)
}

func TestBuildListFilter_UnknownFacetIgnored(t *testing.T) {
	assert.Nil(t, buildListFilter(&usecase.ListProductsInput{Category: "CARBON_FIBER"}))

	filter := buildListFilter(&usecase.ListProductsInput{Category: "CARBON_FIBER", PhoneModel: "PIXEL_8"})
	phoneModels, ok := filter.(repository.PhoneModelIn)
	require.True(t, ok)
	assert.Equal(t, []entity.PhoneModel{entity.PhoneModelPixel8}, phoneModels.Values)
}

func TestNormalizeListInput_UppercasesFacets(t *testing.T) {
	normalized := normalizeListInput(&usecase.ListProductsInput{Category: " leather ", PhoneModel: "iphone_15"})

	assert.Equal(t, "LEATHER", normalized.Category)
	assert.Equal(t, "IPHONE_15", normalized.PhoneModel)
}

func TestNormalizeListInput_CanonicalizesSearch(t *testing.T) {
	normalized := normalizeListInput(&usecase.ListProductsInput{Search: "  Leather Case "})

	assert.Equal(t, "leather case", normalized.Search)

	// Spacing and casing variants of the same query must share one cache
	// entry once normalized.
	first := productListCacheKey(normalizeListInput(&usecase.ListProductsInput{Search: "case "}))
	second := productListCacheKey(normalizeListInput(&usecase.ListProductsInput{Search: "CASE"}))
	assert.Equal(t, first, second)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, totalPages(25, 12))
	assert.Equal(t, 2, totalPages(24, 12))
	assert.Equal(t, 1, totalPages(1, 12))
	assert.Equal(t, 0, totalPages(0, 12))
}
