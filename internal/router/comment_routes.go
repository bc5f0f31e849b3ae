package router

import (
	"os-blog-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerCommentRoutes(api *gin.RouterGroup, commentLimiter gin.HandlerFunc, g guards, m *modules.AppModules) {
	comments := api.Group("/comments")
	comments.GET("/post/:postId", m.Comment.Handler.ListForPost)
	comments.POST("/:postId", commentLimiter, m.Comment.Handler.Submit)

	// 审核接口仅管理员可用
	comments.GET("", g.admin, m.Comment.Handler.ListForModeration)
	comments.PATCH("/:id/approve", g.admin, m.Comment.Handler.Approve)
	comments.PATCH("/:id/spam", g.admin, m.Comment.Handler.MarkSpam)
	comments.DELETE("/:id", g.admin, m.Comment.Handler.Delete)
}
