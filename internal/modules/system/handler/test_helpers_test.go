package handler

import (
	"testing"

	settingsrepo "os-blog-server/internal/modules/settings/repo"
	modulerepo "os-blog-server/internal/modules/system/repo"
	systemservice "os-blog-server/internal/modules/system/service"
	userrepo "os-blog-server/internal/modules/user/repo"
	userservice "os-blog-server/internal/modules/user/service"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("初始化设置失败: %v", err)
	}
	userSvc := userservice.New(appService, userrepo.NewUserRepository(gdb))
	testHandler = New(systemservice.New(appService, modulerepo.NewSystemRepository(gdb), userSvc))
	return gdb
}
