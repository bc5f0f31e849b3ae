package service

import (
	"testing"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/comment/dto"
	modulerepo "os-blog-server/internal/modules/comment/repo"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	testService = New(appService, modulerepo.NewCommentRepository(gdb))
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

func publishedPost(t *testing.T, gdb *gorm.DB) *model.Post {
	t.Helper()
	author := testutils.CreateUser(t, gdb, "writer", consts.RoleAuthor)
	return testutils.CreatePost(t, gdb, author.ID, "open-post", true)
}

func input(postID uint, email, ip string) dto.SubmitInput {
	return dto.SubmitInput{
		PostID:      postID,
		Content:     "Nice post",
		AuthorName:  "Reader",
		AuthorEmail: email,
		ClientIP:    ip,
		UserAgent:   "test-agent",
	}
}
