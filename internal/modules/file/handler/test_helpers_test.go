package handler

import (
	"testing"

	"os-blog-server/internal/config"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/access"
	fileservice "os-blog-server/internal/modules/file/service"
	modulerepo "os-blog-server/internal/modules/file/repo"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	testHandler = New(fileservice.New(appService, modulerepo.NewFileRepository(gdb), config.UploadConfig{
		Path:      t.TempDir(),
		URLPrefix: "/uploads/",
	}))
	appService.ClearCache()
	return gdb
}

// newTestRouter 用固定身份代替鉴权链。
func newTestRouter(user *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != nil {
			access.SetPrincipal(c, &access.Principal{UserID: user.ID, Username: user.Username, Role: user.Role})
		}
		c.Next()
	})
	r.POST("/files/upload/:category", testHandler.Upload)
	r.GET("/files", testHandler.List)
	r.DELETE("/files/:id", testHandler.Delete)
	return r
}
