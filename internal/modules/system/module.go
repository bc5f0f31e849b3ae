package system

import (
	"os-blog-server/internal/modules/system/handler"
	"os-blog-server/internal/modules/system/repo"
	"os-blog-server/internal/modules/system/service"
	platformservice "os-blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	systemStore repo.SystemStore,
	identity service.IdentityChecker,
) *Module {
	moduleService := service.New(appService, systemStore, identity)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
