package service

import (
	"testing"

	"os-blog-server/internal/consts"
	moduledto "os-blog-server/internal/modules/category/dto"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"
)

func strPtr(s string) *string { return &s }

// 测试内容：验证分类 slug 规范化以及碰撞时追加序号。
func TestCreateCategory_SlugResolution(t *testing.T) {
	gdb := setupTestDB(t)
	author, _ := authorAndAdmin(t, gdb)

	first, err := testService.Create(author, moduledto.CreateCategoryRequest{Name: "Tech & Science!"})
	if err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	if first.Slug != "tech-science" {
		t.Fatalf("期望 slug 为 tech-science，实际为 %q", first.Slug)
	}

	second, err := testService.Create(author, moduledto.CreateCategoryRequest{Name: "Tech Science"})
	if err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	if second.Slug != "tech-science-1" {
		t.Fatalf("期望 slug 为 tech-science-1，实际为 %q", second.Slug)
	}

	fallback, err := testService.Create(author, moduledto.CreateCategoryRequest{Name: "!!!"})
	if err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	if fallback.Slug != consts.SlugFallbackCategory {
		t.Fatalf("期望兜底 slug，实际为 %q", fallback.Slug)
	}
}

// 测试内容：验证重名与非法颜色被拒绝。
func TestCreateCategory_Validation(t *testing.T) {
	gdb := setupTestDB(t)
	author, _ := authorAndAdmin(t, gdb)

	if _, err := testService.Create(author, moduledto.CreateCategoryRequest{Name: "Go"}); err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	_, err := testService.Create(author, moduledto.CreateCategoryRequest{Name: "Go"})
	if !platformservice.IsCode(err, platformservice.ErrorCodeConflict) {
		t.Fatalf("期望重名返回 Conflict，实际为 %v", err)
	}
	_, err = testService.Create(author, moduledto.CreateCategoryRequest{Name: "Rust", Color: strPtr("red")})
	if !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望非法颜色返回 Validation，实际为 %v", err)
	}
}

// 测试内容：验证只有创建者或管理员可以修改，名称变化时 slug 随之更新。
func TestUpdateCategory_OwnershipAndSlug(t *testing.T) {
	gdb := setupTestDB(t)
	author, admin := authorAndAdmin(t, gdb)
	other := principalOf(t, gdb, "other", consts.RoleAuthor)

	category, err := testService.Create(author, moduledto.CreateCategoryRequest{Name: "Old Name"})
	if err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}

	_, err = testService.Update(other, category.ID, moduledto.UpdateCategoryRequest{Name: strPtr("Hacked")})
	if !platformservice.IsCode(err, platformservice.ErrorCodeForbidden) {
		t.Fatalf("期望非创建者返回 Forbidden，实际为 %v", err)
	}

	updated, err := testService.Update(admin, category.ID, moduledto.UpdateCategoryRequest{Name: strPtr("New Name")})
	if err != nil {
		t.Fatalf("管理员更新失败: %v", err)
	}
	if updated.Slug != "new-name" {
		t.Fatalf("期望 slug 更新为 new-name，实际为 %q", updated.Slug)
	}

	same, err := testService.Update(author, category.ID, moduledto.UpdateCategoryRequest{Description: strPtr("desc")})
	if err != nil || same.Slug != "new-name" {
		t.Fatalf("期望只改描述时 slug 不变，实际为 %+v, err=%v", same, err)
	}
}

// 测试内容：验证分类下有文章时不能删除，post_count 只统计已发布文章。
func TestDeleteCategory_ConflictWithPosts(t *testing.T) {
	gdb := setupTestDB(t)
	author, _ := authorAndAdmin(t, gdb)

	category, err := testService.Create(author, moduledto.CreateCategoryRequest{Name: "Go"})
	if err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	published := testutils.CreatePost(t, gdb, author.UserID, "p1", true)
	draft := testutils.CreatePost(t, gdb, author.UserID, "p2", false)
	gdb.Model(published).Update("category_id", category.ID)
	gdb.Model(draft).Update("category_id", category.ID)

	got, err := testService.GetBySlug("go")
	if err != nil || got.PostCount != 1 {
		t.Fatalf("期望 post_count=1，实际为 %+v, err=%v", got, err)
	}

	if err := testService.Delete(author, category.ID); !platformservice.IsCode(err, platformservice.ErrorCodeConflict) {
		t.Fatalf("期望 Conflict，实际为 %v", err)
	}

	gdb.Exec("UPDATE posts SET category_id = NULL")
	if err := testService.Delete(author, category.ID); err != nil {
		t.Fatalf("期望无文章后可以删除，实际为 %v", err)
	}
	if _, err := testService.GetBySlug("go"); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望删除后 NotFound，实际为 %v", err)
	}
}
