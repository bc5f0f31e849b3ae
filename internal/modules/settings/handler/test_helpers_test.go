package handler

import (
	"testing"

	modulerepo "os-blog-server/internal/modules/settings/repo"
	settingsservice "os-blog-server/internal/modules/settings/service"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testService *platformservice.AppService
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := modulerepo.NewSettingRepository(gdb)
	testService = platformservice.NewAppService(settingStore)
	testHandler = New(settingsservice.New(testService, settingStore, modulerepo.NewBlogSettingsRepository(gdb)))
	testService.ClearCache()
	return gdb
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/settings", testHandler.GetPublicSettings)
	r.GET("/admin/blog-settings", testHandler.GetBlogSettings)
	r.PATCH("/admin/blog-settings", testHandler.UpdateBlogSettings)
	r.GET("/admin/settings", testHandler.GetSettings)
	r.PATCH("/admin/settings", testHandler.UpdateSettings)
	return r
}
