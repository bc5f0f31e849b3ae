package file

import (
	"os-blog-server/internal/config"
	"os-blog-server/internal/modules/file/handler"
	"os-blog-server/internal/modules/file/repo"
	"os-blog-server/internal/modules/file/service"
	platformservice "os-blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, fileStore repo.FileStore, upload config.UploadConfig) *Module {
	moduleService := service.New(appService, fileStore, upload)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
