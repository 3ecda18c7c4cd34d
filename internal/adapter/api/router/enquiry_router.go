package router

import (
	"estatehub/internal/adapter/api/handler"
	"estatehub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupEnquiryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	enquiryHandler := handler.GetEnquiryHandler()

	enquiries := e.Group("/v1/enquiries")
	enquiries.POST("", enquiryHandler.SubmitEnquiry)
	enquiries.POST("/home-loans", enquiryHandler.SubmitHomeLoanEnquiry)
	enquiries.POST("/interior-design", enquiryHandler.SubmitInteriorDesignEnquiry)
	enquiries.POST("/promotions", enquiryHandler.SubmitPromotionEnquiry)

	admin := e.Group("/v1/admin/enquiries")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", enquiryHandler.ListEnquiries)
	admin.GET("/:id", enquiryHandler.GetEnquiry)
	admin.PATCH("/:id/status", enquiryHandler.UpdateEnquiryStatus)
}
