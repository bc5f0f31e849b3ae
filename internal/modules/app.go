package modules

import (
	"os-blog-server/internal/config"
	"os-blog-server/internal/modules/access"
	"os-blog-server/internal/modules/auth"
	"os-blog-server/internal/modules/category"
	categoryrepo "os-blog-server/internal/modules/category/repo"
	"os-blog-server/internal/modules/comment"
	commentrepo "os-blog-server/internal/modules/comment/repo"
	"os-blog-server/internal/modules/file"
	filerepo "os-blog-server/internal/modules/file/repo"
	"os-blog-server/internal/modules/post"
	postrepo "os-blog-server/internal/modules/post/repo"
	"os-blog-server/internal/modules/settings"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	"os-blog-server/internal/modules/system"
	systemrepo "os-blog-server/internal/modules/system/repo"
	"os-blog-server/internal/modules/tag"
	tagrepo "os-blog-server/internal/modules/tag/repo"
	"os-blog-server/internal/modules/user"
	userrepo "os-blog-server/internal/modules/user/repo"
	"os-blog-server/internal/platform/notify"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"

	"gorm.io/gorm"
)

type AppModules struct {
	Auth     *auth.Module
	User     *user.Module
	System   *system.Module
	Category *category.Module
	Tag      *tag.Module
	Post     *post.Module
	Comment  *comment.Module
	Settings *settings.Module
	File     *file.Module

	// Chain 是所有受保护路由共用的访问决策链。
	Chain *access.Chain
}

// Stores 汇总各模块的持久化依赖，便于依赖注入一次性传入。
type Stores struct {
	User         userrepo.UserStore
	System       systemrepo.SystemStore
	Category     categoryrepo.CategoryStore
	Tag          tagrepo.TagStore
	Post         postrepo.PostStore
	Comment      commentrepo.CommentStore
	Setting      settingsrepo.SettingStore
	BlogSettings settingsrepo.BlogSettingsStore
	File         filerepo.FileStore
}

// NewStores 基于同一个数据库连接构造全部仓储。
func NewStores(db *gorm.DB) Stores {
	return Stores{
		User:         userrepo.NewUserRepository(db),
		System:       systemrepo.NewSystemRepository(db),
		Category:     categoryrepo.NewCategoryRepository(db),
		Tag:          tagrepo.NewTagRepository(db),
		Post:         postrepo.NewPostRepository(db),
		Comment:      commentrepo.NewCommentRepository(db),
		Setting:      settingsrepo.NewSettingRepository(db),
		BlogSettings: settingsrepo.NewBlogSettingsRepository(db),
		File:         filerepo.NewFileRepository(db),
	}
}

func New(
	appService *platformservice.AppService,
	stores Stores,
	tokens *utils.TokenCodec,
	captcha *utils.Captcha,
	dispatcher *notify.Dispatcher,
	upload config.UploadConfig,
) *AppModules {
	fileModule := file.New(appService, stores.File, upload)
	userModule := user.New(appService, stores.User, fileModule.Service)
	authModule := auth.New(appService, stores.User, tokens, captcha)
	categoryModule := category.New(appService, stores.Category)
	tagModule := tag.New(appService, stores.Tag)

	return &AppModules{
		Auth:     authModule,
		User:     userModule,
		System:   system.New(appService, stores.System, userModule.Service),
		Category: categoryModule,
		Tag:      tagModule,
		Post:     post.New(appService, stores.Post, categoryModule.Service, tagModule.Service, dispatcher),
		Comment:  comment.New(appService, stores.Comment, authModule.Service),
		Settings: settings.New(appService, stores.Setting, stores.BlogSettings),
		File:     fileModule,
		Chain:    access.NewChain(tokens, stores.User),
	}
}
