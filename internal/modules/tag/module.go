package tag

import (
	"os-blog-server/internal/modules/tag/handler"
	"os-blog-server/internal/modules/tag/repo"
	"os-blog-server/internal/modules/tag/service"
	platformservice "os-blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, tagStore repo.TagStore) *Module {
	moduleService := service.New(appService, tagStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
