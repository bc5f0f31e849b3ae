package service

import (
	"testing"

	settingsrepo "os-blog-server/internal/modules/settings/repo"
	modulerepo "os-blog-server/internal/modules/system/repo"
	userrepo "os-blog-server/internal/modules/user/repo"
	userservice "os-blog-server/internal/modules/user/service"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("初始化设置失败: %v", err)
	}
	userSvc := userservice.New(appService, userrepo.NewUserRepository(gdb))
	testService = New(appService, modulerepo.NewSystemRepository(gdb), userSvc)
	return gdb
}
