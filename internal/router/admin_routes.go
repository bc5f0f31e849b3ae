package router

import (
	"os-blog-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	// 文章管理对作者开放，归属校验在服务层完成
	posts := api.Group("/admin/posts", g.full)
	posts.GET("", m.Post.Handler.AdminList)
	posts.POST("", m.Post.Handler.Create)
	posts.GET("/:id", m.Post.Handler.Get)
	posts.PATCH("/:id", m.Post.Handler.Update)
	posts.DELETE("/:id", m.Post.Handler.Delete)

	adminGroup := api.Group("/admin", g.admin)
	adminGroup.GET("/stats", m.System.Handler.GetServerStats)

	adminGroup.GET("/settings", m.Settings.Handler.GetSettings)
	adminGroup.PATCH("/settings", m.Settings.Handler.UpdateSettings)
	adminGroup.GET("/blog-settings", m.Settings.Handler.GetBlogSettings)
	adminGroup.PATCH("/blog-settings", m.Settings.Handler.UpdateBlogSettings)
}
