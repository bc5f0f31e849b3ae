package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"os-blog-server/internal/config"
	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/access"
	modulerepo "os-blog-server/internal/modules/file/repo"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestService(t *testing.T) (*gorm.DB, string) {
	gdb := testutils.SetupDB(t)
	root := t.TempDir()
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	testService = New(appService, modulerepo.NewFileRepository(gdb), config.UploadConfig{
		Path:      root,
		URLPrefix: "/uploads/",
	})
	testService.ClearCache()
	return gdb, root
}

func principalOf(u *model.User) *access.Principal {
	return &access.Principal{UserID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

func authorAndAdmin(t *testing.T, gdb *gorm.DB) (*access.Principal, *access.Principal) {
	t.Helper()
	author := testutils.CreateUser(t, gdb, "writer", consts.RoleAuthor)
	admin := testutils.CreateUser(t, gdb, "boss", consts.RoleAdmin)
	return principalOf(author), principalOf(admin)
}

// fileHeader 通过真实的 multipart 解析得到 FileHeader。
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("创建表单文件失败: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入表单文件失败: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("关闭表单失败: %v", err)
	}

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("解析表单失败: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}
