package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"snapcase/internal/domain/entity"
	domainerrors "snapcase/internal/domain/errors"
	"snapcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalogUsecase struct {
	mock.Mock
}

func (m *mockCatalogUsecase) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ProductPage), args.Error(1)
}

func (m *mockCatalogUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockCatalogUsecase) GetProductReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCatalogHandler_ListProducts_ForwardsQueryParams(t *testing.T) {
	uc := &mockCatalogUsecase{}
	handler := &CatalogHandler{catalogUC: uc, logger: slog.Default()}

	uc.On("ListProducts", mock.Anything, mock.MatchedBy(func(input *usecase.ListProductsInput) bool {
		return input.Search == "leather" && input.Page == 2 && input.Limit == 24 &&
			input.SortBy == "price" && input.Order == "asc"
	})).Return(&usecase.ProductPage{Products: []*entity.Product{}, Page: 2, Limit: 24}, nil)

	c, rec := newTestContext(http.MethodGet, "/products?search=leather&page=2&limit=24&sortBy=price&order=asc")

	require.NoError(t, handler.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page":2`)
	uc.AssertExpectations(t)
}

func TestCatalogHandler_ListProducts_FacetParams(t *testing.T) {
	uc := &mockCatalogUsecase{}
	handler := &CatalogHandler{catalogUC: uc, logger: slog.Default()}

	uc.On("ListProducts", mock.Anything, mock.MatchedBy(func(input *usecase.ListProductsInput) bool {
		return input.Category == "LEATHER" && input.PhoneModel == "IPHONE_15"
	})).Return(&usecase.ProductPage{Products: []*entity.Product{}, Page: 1, Limit: 12}, nil)

	c, rec := newTestContext(http.MethodGet, "/products?category=LEATHER&phoneModel=IPHONE_15")

	require.NoError(t, handler.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestCatalogHandler_GetProduct_InvalidID(t *testing.T) {
	uc := &mockCatalogUsecase{}
	handler := &CatalogHandler{catalogUC: uc, logger: slog.Default()}

	c, rec := newTestContext(http.MethodGet, "/products/not-a-uuid")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	uc.AssertNotCalled(t, "GetProduct")
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	uc := &mockCatalogUsecase{}
	handler := &CatalogHandler{catalogUC: uc, logger: slog.Default()}
	productID := uuid.New()

	uc.On("GetProduct", mock.Anything, productID).Return(nil, domainerrors.ErrProductNotFound)

	c, rec := newTestContext(http.MethodGet, "/products/"+productID.String())
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}
