package router

import (
	"os-blog-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerContentRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	posts := api.Group("/posts")
	posts.GET("/published", m.Post.Handler.ListPublished)
	// 作者本人或管理员可以预览未发布文章
	posts.GET("/slug/:slug", g.optional, m.Post.Handler.GetBySlug)

	categories := api.Group("/categories")
	categories.GET("", m.Category.Handler.List)
	categories.GET("/slug/:slug", m.Category.Handler.GetBySlug)
	categories.POST("", g.full, m.Category.Handler.Create)
	categories.PATCH("/:id", g.full, m.Category.Handler.Update)
	categories.DELETE("/:id", g.full, m.Category.Handler.Delete)

	tags := api.Group("/tags")
	tags.GET("", m.Tag.Handler.List)
	tags.GET("/slug/:slug", m.Tag.Handler.GetBySlug)
	tags.POST("", g.full, m.Tag.Handler.Create)
	tags.PATCH("/:id", g.admin, m.Tag.Handler.Update)
	tags.DELETE("/:id", g.admin, m.Tag.Handler.Delete)
}
