package service

import (
	"testing"

	"os-blog-server/internal/model"
	modulerepo "os-blog-server/internal/modules/settings/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := modulerepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(appService, settingStore, modulerepo.NewBlogSettingsRepository(gdb))
	testService.ClearCache()
	return gdb
}

func seedBlogSettings(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	blog := model.BlogSettings{
		ID:            model.BlogSettingsID,
		Title:         "My Blog",
		Description:   "notes",
		EmailSettings: datatypes.JSON(`{"smtp_host":"mail.example.com"}`),
		SocialLinks:   datatypes.JSON(`{"github":"https://github.com/me"}`),
	}
	if err := gdb.Create(&blog).Error; err != nil {
		t.Fatalf("创建博客设置失败: %v", err)
	}
}

func assertSettingsServiceErrorCode(t *testing.T, err error, code platformservice.ErrorCode) *platformservice.ServiceError {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %q，实际为 %q", code, serviceErr.Code)
	}
	return serviceErr
}

func strPtr(s string) *string { return &s }

func jsonPtr(s string) *datatypes.JSON {
	v := datatypes.JSON(s)
	return &v
}
