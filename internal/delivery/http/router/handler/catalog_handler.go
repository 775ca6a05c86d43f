// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"snapcase/internal/delivery/http/middleware"
	"snapcase/internal/delivery/http/response"
	"snapcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	recUC     usecase.RecommendationUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalogUC usecase.CatalogUsecase, recUC usecase.RecommendationUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		recUC:     recUC,
		logger:    logger,
	}
}

// listProductsQuery binds the catalog listing query string. Unset fields
// fall back to the usecase defaults.
type listProductsQuery struct {
	Search     string `query:"search"`
	Category   string `query:"category"`
	PhoneModel string `query:"phoneModel"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	SortBy     string `query:"sortBy"`
	Order      string `query:"order"`
}

// ListProducts handles the paginated catalog listing request.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var q listProductsQuery
	if err := c.Bind(&q); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing query")
	}

	page, err := h.catalogUC.ListProducts(c.Request().Context(), &usecase.ListProductsInput{
		Search:     q.Search,
		Category:   q.Category,
		PhoneModel: q.PhoneModel,
		Page:       q.Page,
		Limit:      q.Limit,
		SortBy:     q.SortBy,
		Order:      q.Order,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetProduct handles the single product detail request.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetProductReviews handles the request for a product's reviews, newest first.
func (h *CatalogHandler) GetProductReviews(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	reviews, err := h.catalogUC.GetProductReviews(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// GetRecommendations handles the personalized recommendation request for the
// authenticated user.
func (h *CatalogHandler) GetRecommendations(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.recUC.GetRecommendations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// currentUserID extracts the authenticated user's ID set by the auth
// middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
