package router

import (
	"estatehub/internal/adapter/api/handler"
	"estatehub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.ListListings)
	listings.GET("/featured", listingHandler.FeaturedListings)
	listings.GET("/category/:category", listingHandler.ListingsByCategory)
	listings.GET("/:id", listingHandler.GetListing)

	admin := e.Group("/v1/admin/listings")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", listingHandler.ListListingsAdmin)
	admin.POST("", listingHandler.CreateListing)
	admin.GET("/:id", listingHandler.GetListingAdmin)
	admin.PUT("/:id", listingHandler.UpdateListing)
	admin.PATCH("/:id/deactivate", listingHandler.DeactivateListing)
	admin.DELETE("/:id", listingHandler.DeleteListing)
}
