package user

import (
	"os-blog-server/internal/modules/user/handler"
	"os-blog-server/internal/modules/user/repo"
	"os-blog-server/internal/modules/user/service"
	platformservice "os-blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore, fileCleaner service.FileCleaner) *Module {
	moduleService := service.New(appService, userStore)
	moduleService.SetFileCleaner(fileCleaner)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
