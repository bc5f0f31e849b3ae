package router

import (
	"os-blog-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, m *modules.AppModules) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong from gin"})
	})
	api.GET("/settings", m.Settings.Handler.GetPublicSettings)
}
