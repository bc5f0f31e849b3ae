package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"os-blog-server/internal/model"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	"os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *service.AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = service.NewAppService(settingStore)
	testService.ClearCache()
	return gdb
}

func setSetting(t *testing.T, gdb *gorm.DB, key, value string) {
	t.Helper()
	if err := gdb.Save(&model.Setting{Key: key, Value: value}).Error; err != nil {
		t.Fatalf("设置配置项失败: %v", err)
	}
	testService.ClearCache()
}

func requestFrom(h http.Handler, method, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
