package service

import (
	"testing"

	"os-blog-server/internal/config"
	"os-blog-server/internal/model"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	userrepo "os-blog-server/internal/modules/user/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"
	"os-blog-server/internal/utils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	userStore := userrepo.NewUserRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	tokens := utils.NewTokenCodec(config.JWTConfig{Secret: "auth_test_secret", ExpirationHours: 1})
	testService = New(appService, userStore, tokens, utils.NewCaptcha())
	testService.ClearCache()
	return gdb
}

func setSetting(t *testing.T, gdb *gorm.DB, key, value string) {
	t.Helper()
	if err := gdb.Save(&model.Setting{Key: key, Value: value}).Error; err != nil {
		t.Fatalf("写入设置失败: %v", err)
	}
	testService.ClearCache()
}
