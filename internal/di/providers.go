package di

import (
	"os-blog-server/internal/config"
	"os-blog-server/internal/modules"
	"os-blog-server/internal/platform/cache"
	"os-blog-server/internal/platform/jobs"
	"os-blog-server/internal/platform/notify"
	"os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

// 配置只在这里拆分成各组件需要的部分，组件本身不读取全局配置。

func provideAppService(stores modules.Stores) *service.AppService {
	return service.NewAppService(stores.Setting)
}

func provideTokenCodec(cfg config.Config) *utils.TokenCodec {
	return utils.NewTokenCodec(cfg.JWT)
}

func provideUploadConfig(cfg config.Config) config.UploadConfig {
	return cfg.Upload
}

func provideRedis(cfg config.Config) *cache.Redis {
	return cache.NewRedis(cfg.Redis)
}

func provideDispatcher(appService *service.AppService) *notify.Dispatcher {
	return notify.NewDispatcher(appService, notify.DefaultQueueSize)
}

func provideScheduler(appModules *modules.AppModules) (*jobs.Scheduler, error) {
	return jobs.NewScheduler(appModules.Comment.Service)
}
