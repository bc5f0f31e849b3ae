package service

import (
	"os-blog-server/internal/modules/post/repo"
	"os-blog-server/internal/platform/notify"
	platformservice "os-blog-server/internal/platform/service"
)

// CategoryChecker 校验分类是否存在，由 category 模块提供。
type CategoryChecker interface {
	Exists(id uint) (bool, error)
}

// TagChecker 返回不存在的标签 ID，由 tag 模块提供。
type TagChecker interface {
	MissingIDs(ids []uint) ([]uint, error)
}

// RegenNotifier 接收静态站点重建事件，入队不能阻塞。
type RegenNotifier interface {
	Enqueue(event notify.Event) bool
}

type Service struct {
	*platformservice.AppService
	postStore  repo.PostStore
	categories CategoryChecker
	tags       TagChecker
	notifier   RegenNotifier
}

func New(
	appService *platformservice.AppService,
	postStore repo.PostStore,
	categories CategoryChecker,
	tags TagChecker,
	notifier RegenNotifier,
) *Service {
	return &Service{
		AppService: appService,
		postStore:  postStore,
		categories: categories,
		tags:       tags,
		notifier:   notifier,
	}
}
