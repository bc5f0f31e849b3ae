package service

import (
	"testing"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/modules/access"
	modulerepo "os-blog-server/internal/modules/category/repo"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	testService = New(appService, modulerepo.NewCategoryRepository(gdb))
	return gdb
}

func principalOf(t *testing.T, gdb *gorm.DB, username, role string) *access.Principal {
	t.Helper()
	u := testutils.CreateUser(t, gdb, username, role)
	return &access.Principal{UserID: u.ID, Username: u.Username, Role: u.Role}
}

func authorAndAdmin(t *testing.T, gdb *gorm.DB) (*access.Principal, *access.Principal) {
	return principalOf(t, gdb, "writer", consts.RoleAuthor), principalOf(t, gdb, "boss", consts.RoleAdmin)
}
