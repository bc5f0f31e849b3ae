package service

import (
	"sync"
	"testing"

	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/access"
	categoryrepo "os-blog-server/internal/modules/category/repo"
	categoryservice "os-blog-server/internal/modules/category/service"
	modulerepo "os-blog-server/internal/modules/post/repo"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	tagrepo "os-blog-server/internal/modules/tag/repo"
	tagservice "os-blog-server/internal/modules/tag/service"
	"os-blog-server/internal/platform/notify"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recordingNotifier) Enqueue(event notify.Event) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return true
}

func (r *recordingNotifier) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

var (
	testService  *Service
	testNotifier *recordingNotifier
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	categories := categoryservice.New(appService, categoryrepo.NewCategoryRepository(gdb))
	tags := tagservice.New(appService, tagrepo.NewTagRepository(gdb))
	testNotifier = &recordingNotifier{}
	testService = New(appService, modulerepo.NewPostRepository(gdb), categories, tags, testNotifier)
	return gdb
}

func principal(t *testing.T, gdb *gorm.DB, username, role string) *access.Principal {
	t.Helper()
	u := testutils.CreateUser(t, gdb, username, role)
	return &access.Principal{UserID: u.ID, Username: u.Username, Role: u.Role}
}

func createCategory(t *testing.T, gdb *gorm.DB, ownerID uint, name, slug string) *model.Category {
	t.Helper()
	c := &model.Category{Name: name, Slug: slug, CreatedBy: ownerID}
	if err := gdb.Create(c).Error; err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	return c
}

func createTag(t *testing.T, gdb *gorm.DB, name, slug string) *model.Tag {
	t.Helper()
	tag := &model.Tag{Name: name, Slug: slug}
	if err := gdb.Create(tag).Error; err != nil {
		t.Fatalf("创建标签失败: %v", err)
	}
	return tag
}

func boolPtr(b bool) *bool       { return &b }
func strPtr(s string) *string    { return &s }
func uintPtr(v uint) *uint       { return &v }
func idsPtr(ids ...uint) *[]uint { return &ids }
