package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"os-blog-server/internal/model"

	"github.com/goccy/go-json"
)

const commentBody = `{"content":"Nice post","author_name":"Reader","author_email":"Reader@Example.com","captcha_id":"c1","captcha_answer":"%s"}`

// 测试内容：验证提交评论返回 201 且评论为待审核状态，审核前不出现在公开列表中。
func TestSubmit_PendingUntilApproved(t *testing.T) {
	gdb, h := setupTestDB(t, nil)
	post := publishedPost(t, gdb)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/comments/%d", post.ID), strings.NewReader(fmt.Sprintf(commentBody, "")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d: %s", w.Code, w.Body.String())
	}

	var stored model.Comment
	if err := gdb.First(&stored).Error; err != nil {
		t.Fatalf("读取评论失败: %v", err)
	}
	if stored.Approved || stored.Spam {
		t.Fatalf("期望新评论为待审核，实际为 %+v", stored)
	}

	list := func() int64 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/comments/post/%d", post.ID), nil))
		if w.Code != http.StatusOK {
			t.Fatalf("期望 200，实际为 %d", w.Code)
		}
		var resp struct {
			Total int64 `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("解析响应失败: %v", err)
		}
		return resp.Total
	}
	if got := list(); got != 0 {
		t.Fatalf("期望审核前公开列表为空，实际为 %d", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/comments/%d/approve", stored.ID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望审核成功，实际为 %d: %s", w.Code, w.Body.String())
	}
	if got := list(); got != 1 {
		t.Fatalf("期望审核后公开列表有 1 条，实际为 %d", got)
	}
}

// 测试内容：验证验证码错误时不会写入评论。
func TestSubmit_CaptchaRejected(t *testing.T) {
	gdb, h := setupTestDB(t, rejectingCaptcha{answer: "42"})
	post := publishedPost(t, gdb)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/comments/%d", post.ID), strings.NewReader(fmt.Sprintf(commentBody, "41")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d: %s", w.Code, w.Body.String())
	}

	var count int64
	gdb.Model(&model.Comment{}).Count(&count)
	if count != 0 {
		t.Fatalf("期望没有写入评论，实际为 %d", count)
	}
}

// 测试内容：验证非法文章 ID 返回 400。
func TestSubmit_InvalidPostID(t *testing.T) {
	_, h := setupTestDB(t, nil)
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments/abc", strings.NewReader(fmt.Sprintf(commentBody, "")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
}
