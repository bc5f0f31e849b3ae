package router

import (
	"os-blog-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerFileRoutes(api *gin.RouterGroup, uploadLimiter, uploadBodyLimit gin.HandlerFunc, g guards, m *modules.AppModules) {
	files := api.Group("/files")
	files.Use(g.full)

	files.POST("/upload/:category", uploadBodyLimit, uploadLimiter, m.File.Handler.Upload)
	files.GET("", m.File.Handler.List)
	files.DELETE("/:id", m.File.Handler.Delete)
}
