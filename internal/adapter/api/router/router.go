package router

import (
	"estatehub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupListingRouter(e, authMiddleware, adminMiddleware)
	SetupEnquiryRouter(e, authMiddleware, adminMiddleware)
	SetupBlogRouter(e, authMiddleware, adminMiddleware)
	SetupPartnerRouter(e, authMiddleware, adminMiddleware)
	SetupSettingsRouter(e, authMiddleware, adminMiddleware)
	SetupFileRouter(e, authMiddleware, adminMiddleware)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
