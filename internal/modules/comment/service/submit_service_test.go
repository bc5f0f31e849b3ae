package service

import (
	"testing"
	"time"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"
)

// 测试内容：验证评论以待审核状态保存，邮箱统一小写。
func TestSubmit_StoresPending(t *testing.T) {
	gdb := setupTestDB(t)
	post := publishedPost(t, gdb)

	comment, err := testService.Submit(input(post.ID, "Reader@Example.com", "10.0.0.1"))
	if err != nil {
		t.Fatalf("提交评论失败: %v", err)
	}
	if comment.Approved || comment.Spam || comment.AuthorEmail != "reader@example.com" {
		t.Fatalf("评论状态不符合预期: %+v", comment)
	}
	if comment.UserAgent == nil || *comment.UserAgent != "test-agent" {
		t.Fatalf("期望记录 UA，实际为 %v", comment.UserAgent)
	}
}

// 测试内容：验证输入校验先于任何存储访问，未发布文章总是被拒绝。
func TestSubmit_ValidationAndUnpublished(t *testing.T) {
	gdb := setupTestDB(t)
	author := testutils.CreateUser(t, gdb, "writer", consts.RoleAuthor)
	draft := testutils.CreatePost(t, gdb, author.ID, "draft", false)

	bad := input(9999, "not-an-email", "10.0.0.1")
	bad.Content = "   "
	_, err := testService.Submit(bad)
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok || serviceErr.Code != platformservice.ErrorCodeValidation {
		t.Fatalf("期望校验错误（即使文章不存在），实际为 %v", err)
	}
	if serviceErr.Fields["content"] == "" || serviceErr.Fields["author_email"] == "" {
		t.Fatalf("期望 content 与 author_email 字段错误: %+v", serviceErr.Fields)
	}

	if _, err := testService.Submit(input(draft.ID, "a@example.com", "10.0.0.1")); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望未发布文章返回 NotFound，实际为 %v", err)
	}
	if _, err := testService.Submit(input(9999, "a@example.com", "10.0.0.1")); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望不存在的文章返回 NotFound，实际为 %v", err)
	}

	// 关闭评论也不能让未发布文章返回 Forbidden
	setSetting(t, gdb, consts.ConfigCommentsEnabled, "false")
	if _, err := testService.Submit(input(draft.ID, "a@example.com", "10.0.0.1")); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望未发布文章优先返回 NotFound，实际为 %v", err)
	}
}

// 测试内容：验证评论关闭时返回 Forbidden。
func TestSubmit_CommentsDisabled(t *testing.T) {
	gdb := setupTestDB(t)
	post := publishedPost(t, gdb)
	setSetting(t, gdb, consts.ConfigCommentsEnabled, "false")

	if _, err := testService.Submit(input(post.ID, "a@example.com", "10.0.0.1")); !platformservice.IsCode(err, platformservice.ErrorCodeForbidden) {
		t.Fatalf("期望 Forbidden，实际为 %v", err)
	}
}

// 测试内容：验证同一 IP 第 4 条评论被限流，原因为 ip_limit。
func TestSubmit_IPLimit(t *testing.T) {
	gdb := setupTestDB(t)
	post := publishedPost(t, gdb)

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := testService.Submit(input(post.ID, email, "10.0.0.1")); err != nil {
			t.Fatalf("第 %d 条评论失败: %v", i+1, err)
		}
	}
	_, err := testService.Submit(input(post.ID, "d@example.com", "10.0.0.1"))
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok || serviceErr.Code != platformservice.ErrorCodeRateLimited || serviceErr.Reason != ReasonIPLimit {
		t.Fatalf("期望 ip_limit 限流，实际为 %v", err)
	}

	if _, err := testService.Submit(input(post.ID, "d@example.com", "10.0.0.2")); err != nil {
		t.Fatalf("期望其他 IP 不受影响，实际为 %v", err)
	}
}

// 测试内容：验证同一邮箱第 6 条评论被限流，原因为 email_limit。
func TestSubmit_EmailLimit(t *testing.T) {
	gdb := setupTestDB(t)
	post := publishedPost(t, gdb)

	for i := 0; i < 5; i++ {
		ip := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4", "10.0.0.5"}[i]
		if _, err := testService.Submit(input(post.ID, "same@example.com", ip)); err != nil {
			t.Fatalf("第 %d 条评论失败: %v", i+1, err)
		}
	}
	_, err := testService.Submit(input(post.ID, "SAME@example.com", "10.0.0.6"))
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok || serviceErr.Code != platformservice.ErrorCodeRateLimited || serviceErr.Reason != ReasonEmailLimit {
		t.Fatalf("期望 email_limit 限流，实际为 %v", err)
	}
}

// 测试内容：验证窗口期之外的评论不计入限制。
func TestSubmit_WindowExpires(t *testing.T) {
	gdb := setupTestDB(t)
	post := publishedPost(t, gdb)

	old := time.Now().Add(-20 * time.Minute)
	for i := 0; i < 3; i++ {
		c := model.Comment{Content: "old", AuthorName: "r", AuthorEmail: "old@example.com", AuthorIP: "10.0.0.1", PostID: post.ID, CreatedAt: old}
		if err := gdb.Create(&c).Error; err != nil {
			t.Fatalf("创建历史评论失败: %v", err)
		}
	}
	if _, err := testService.Submit(input(post.ID, "new@example.com", "10.0.0.1")); err != nil {
		t.Fatalf("期望窗口外的评论不计数，实际为 %v", err)
	}
}
