package router

import (
	"os-blog-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	users := api.Group("/users")

	users.GET("/me", g.full, m.User.Handler.GetSelfInfo)
	users.PATCH("/me", g.full, m.User.Handler.UpdateSelfInfo)
	// 临时密码账号只能访问改密接口
	users.PATCH("/me/change-password", g.allowTempPass, m.User.Handler.ChangePassword)

	users.GET("", g.admin, m.User.Handler.GetUserList)
	users.POST("", g.admin, m.User.Handler.CreateUser)
	users.GET("/:id", g.admin, m.User.Handler.GetUserDetail)
	users.PATCH("/:id", g.admin, m.User.Handler.UpdateUser)
	users.DELETE("/:id", g.admin, m.User.Handler.DeleteUser)
	users.PATCH("/:id/reset-password", g.admin, m.User.Handler.ResetPassword)
	users.PATCH("/:id/toggle-status", g.admin, m.User.Handler.ToggleStatus)
}
