package handler

import (
	"log/slog"
	"net/http"

	"snapcase/internal/delivery/http/response"
	"snapcase/internal/domain/entity"
	"snapcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProductHandler holds dependencies for administrative product management.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type variantRequest struct {
	Color      string `json:"color" validate:"required"`
	Stock      int    `json:"stock" validate:"gte=0"`
	Image      string `json:"image"`
	PhoneModel string `json:"phone_model" validate:"required"`
}

type productRequest struct {
	Name           string           `json:"name" validate:"required"`
	Description    string           `json:"description"`
	Price          int              `json:"price" validate:"gt=0"`
	Discount       int              `json:"discount" validate:"gte=0,lte=100"`
	Category       string           `json:"category" validate:"required"`
	Tag            string           `json:"tag"`
	AvailableModel string           `json:"available_model"`
	Variants       []variantRequest `json:"variants" validate:"required,min=1,dive"`
}

func (r *productRequest) variants() []usecase.VariantInput {
	variants := make([]usecase.VariantInput, 0, len(r.Variants))
	for _, v := range r.Variants {
		variants = append(variants, usecase.VariantInput{
			Color:      v.Color,
			Stock:      v.Stock,
			Image:      v.Image,
			PhoneModel: entity.PhoneModel(v.PhoneModel),
		})
	}

	return variants
}

// CreateProduct handles the product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Discount:       req.Discount,
		Category:       entity.Category(req.Category),
		Tag:            entity.Tag(req.Tag),
		AvailableModel: req.AvailableModel,
		Variants:       req.variants(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles the full product update request. The submitted
// variant set replaces the existing one.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, &usecase.UpdateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Discount:       req.Discount,
		Category:       entity.Category(req.Category),
		Tag:            entity.Tag(req.Tag),
		AvailableModel: req.AvailableModel,
		Variants:       req.variants(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles the product deletion request.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"})
}
