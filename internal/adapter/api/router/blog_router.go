package router

import (
	"estatehub/internal/adapter/api/handler"
	"estatehub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupBlogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	blogHandler := handler.GetBlogHandler()

	blog := e.Group("/v1/blog")
	blog.GET("", blogHandler.ListPosts)
	blog.GET("/:slug", blogHandler.GetPostBySlug)

	admin := e.Group("/v1/admin/blog")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", blogHandler.ListPostsAdmin)
	admin.POST("", blogHandler.CreatePost)
	admin.GET("/:id", blogHandler.GetPostAdmin)
	admin.PUT("/:id", blogHandler.UpdatePost)
	admin.PATCH("/:id/publish", blogHandler.PublishPost)
	admin.DELETE("/:id", blogHandler.DeletePost)
}
