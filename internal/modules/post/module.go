package post

import (
	"os-blog-server/internal/modules/post/handler"
	"os-blog-server/internal/modules/post/repo"
	"os-blog-server/internal/modules/post/service"
	platformservice "os-blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	postStore repo.PostStore,
	categories service.CategoryChecker,
	tags service.TagChecker,
	notifier service.RegenNotifier,
) *Module {
	moduleService := service.New(appService, postStore, categories, tags, notifier)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
