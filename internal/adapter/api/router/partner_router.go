package router

import (
	"estatehub/internal/adapter/api/handler"
	"estatehub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPartnerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	partnerHandler := handler.GetPartnerHandler()

	e.GET("/v1/partners", partnerHandler.ListPartners)

	admin := e.Group("/v1/admin/partners")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", partnerHandler.ListPartnersAdmin)
	admin.POST("", partnerHandler.CreatePartner)
	admin.PUT("/:id", partnerHandler.UpdatePartner)
	admin.DELETE("/:id", partnerHandler.DeletePartner)
}
