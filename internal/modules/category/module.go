package category

import (
	"os-blog-server/internal/modules/category/handler"
	"os-blog-server/internal/modules/category/repo"
	"os-blog-server/internal/modules/category/service"
	platformservice "os-blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, categoryStore repo.CategoryStore) *Module {
	moduleService := service.New(appService, categoryStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
