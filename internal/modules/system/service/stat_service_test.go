package service

import (
	"testing"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"
	"os-blog-server/internal/testutils"
)

// 测试内容：验证仪表盘统计文章、待审核评论与文件占用。
func TestAdminGetServerStats(t *testing.T) {
	gdb := setupTestDB(t)
	author := testutils.CreateUser(t, gdb, "writer", consts.RoleAuthor)
	post := testutils.CreatePost(t, gdb, author.ID, "hello", true)
	testutils.CreatePost(t, gdb, author.ID, "draft", false)
	comments := []model.Comment{
		{Content: "a", AuthorName: "a", AuthorEmail: "a@example.com", AuthorIP: "1.1.1.1", PostID: post.ID},
		{Content: "b", AuthorName: "b", AuthorEmail: "b@example.com", AuthorIP: "1.1.1.1", PostID: post.ID, Approved: true},
		{Content: "c", AuthorName: "c", AuthorEmail: "c@example.com", AuthorIP: "1.1.1.1", PostID: post.ID, Spam: true},
	}
	if err := gdb.Create(&comments).Error; err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}
	if err := gdb.Create(&model.File{Category: consts.FileCategoryBlogImages, Filename: "a.png", Path: "blog_images/a.png", Size: 2048, MimeType: "image/png", UploaderID: author.ID}).Error; err != nil {
		t.Fatalf("创建文件失败: %v", err)
	}

	stats, err := testService.AdminGetServerStats()
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if stats.PostCount != 2 || stats.PublishedCount != 1 || stats.PendingComments != 1 {
		t.Fatalf("统计结果不符合预期: %+v", stats)
	}
	if stats.FileCount != 1 || stats.StorageUsage != 2048 || stats.UserCount != 1 {
		t.Fatalf("文件或用户统计不符合预期: %+v", stats)
	}
}
