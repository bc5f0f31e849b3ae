package middleware

import (
	"os-blog-server/internal/consts"
	"os-blog-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为上传文件和前端静态资源添加 Cache-Control 头
func StaticCacheMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cc := appService.GetString(consts.ConfigStaticCacheControl); cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
