package settings

import (
	"os-blog-server/internal/modules/settings/handler"
	"os-blog-server/internal/modules/settings/repo"
	"os-blog-server/internal/modules/settings/service"
	platformservice "os-blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore, blogStore repo.BlogSettingsStore) *Module {
	moduleService := service.New(appService, settingStore, blogStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
