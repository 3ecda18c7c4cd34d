package router

import (
	"estatehub/internal/adapter/api/handler"
	"estatehub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	fileHandler := handler.GetFileHandler()

	admin := e.Group("/v1/admin/files")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/images", fileHandler.UploadImage)
	admin.POST("/documents", fileHandler.UploadDocument)
	admin.GET("", fileHandler.ListFiles)
	admin.GET("/objects", fileHandler.ListObjects)
	admin.DELETE("/:id", fileHandler.DeleteFile)
}
