// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"snapcase/internal/delivery/http/middleware"
	"snapcase/internal/delivery/http/router/handler"
	"snapcase/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	ReviewHandler   *handler.ReviewHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	reviewHandler   *handler.ReviewHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		wishlistHandler: params.WishlistHandler,
		reviewHandler:   params.ReviewHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Public catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.GET("/:id/reviews", r.catalogHandler.GetProductReviews)
	}

	// Review posting requires authentication
	productGroup.POST("/:id/reviews", r.reviewHandler.CreateReview, r.authMiddleware.Authenticate)

	// Recommendations are personalized, so they require authentication
	e.GET("/recommendations", r.catalogHandler.GetRecommendations, r.authMiddleware.Authenticate)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Cart routes that require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:variantID", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:variantID", r.cartHandler.RemoveItem)
	}

	// Wishlist routes that require authentication
	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.POST("", r.wishlistHandler.AddProduct)
		wishlistGroup.DELETE("/:productID", r.wishlistHandler.RemoveProduct)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/products", r.productHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)
	}
}
