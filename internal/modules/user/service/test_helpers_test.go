package service

import (
	"testing"

	settingsrepo "os-blog-server/internal/modules/settings/repo"
	userrepo "os-blog-server/internal/modules/user/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"gorm.io/gorm"
)

type recordingCleaner struct {
	calls []uint
}

func (r *recordingCleaner) DeleteAllByUploader(userID uint) error {
	r.calls = append(r.calls, userID)
	return nil
}

func setupTestService(t *testing.T) (*gorm.DB, *Service, *recordingCleaner) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	svc := New(appService, userrepo.NewUserRepository(gdb))
	cleaner := &recordingCleaner{}
	svc.SetFileCleaner(cleaner)
	return gdb, svc, cleaner
}

func assertServiceErrorCode(t *testing.T, err error, code platformservice.ErrorCode) *platformservice.ServiceError {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %q，实际为 %q (%s)", code, serviceErr.Code, serviceErr.Message)
	}
	return serviceErr
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
