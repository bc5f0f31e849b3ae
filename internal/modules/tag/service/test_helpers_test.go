package service

import (
	"testing"

	settingsrepo "os-blog-server/internal/modules/settings/repo"
	modulerepo "os-blog-server/internal/modules/tag/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	testService = New(appService, modulerepo.NewTagRepository(gdb))
	return gdb
}
