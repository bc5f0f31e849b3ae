package router

import (
	"os-blog-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, loginLimiter gin.HandlerFunc, g guards, m *modules.AppModules) {
	auth := api.Group("/auth")
	auth.POST("/login", loginLimiter, m.Auth.Handler.Login)
	auth.GET("/me", g.full, m.Auth.Handler.Me)
	auth.GET("/captcha", m.Auth.Handler.GetCaptcha)

	// 初始化只允许执行一次，由 allow_init 控制
	setup := api.Group("/setup")
	setup.GET("/required", m.System.Handler.GetSetupState)
	setup.POST("/admin", loginLimiter, m.System.Handler.SetupAdmin)
}
