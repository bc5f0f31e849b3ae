package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/testutils"

	"github.com/goccy/go-json"
)

func uploadRequest(t *testing.T, category, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile("file", filename)
	_, _ = part.Write(content)
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/files/upload/"+category, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// 测试内容：验证上传、列表与删除接口的完整流程。
func TestFileHandler_UploadListDelete(t *testing.T) {
	gdb := setupTestDB(t)
	author := testutils.CreateUser(t, gdb, "writer", consts.RoleAuthor)
	r := newTestRouter(author)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "blog_images", "a.png", testutils.MinimalPNG(t)))
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d: %s", w.Code, w.Body.String())
	}
	var uploaded struct {
		Data struct {
			File struct {
				ID uint `json:"id"`
			} `json:"file"`
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &uploaded); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if !strings.HasPrefix(uploaded.Data.URL, "/uploads/blog_images/") {
		t.Fatalf("返回地址不符合预期: %s", uploaded.Data.URL)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total":1`) {
		t.Fatalf("期望列表返回 1 个文件，实际为 %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/files/%d", uploaded.Data.File.ID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望删除成功，实际为 %d: %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证作者上传 settings 分类返回 403，缺少文件返回 400，未登录返回 401。
func TestFileHandler_Errors(t *testing.T) {
	gdb := setupTestDB(t)
	author := testutils.CreateUser(t, gdb, "writer", consts.RoleAuthor)

	w := httptest.NewRecorder()
	newTestRouter(author).ServeHTTP(w, uploadRequest(t, "settings", "logo.png", testutils.MinimalPNG(t)))
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}

	w = httptest.NewRecorder()
	newTestRouter(author).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/files/upload/blog_images", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}

	w = httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}
}
