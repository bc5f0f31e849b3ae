package di

import (
	"os-blog-server/internal/platform/cache"
	"os-blog-server/internal/platform/jobs"
	"os-blog-server/internal/platform/notify"
	"os-blog-server/internal/platform/service"
	"os-blog-server/internal/router"
)

type Application struct {
	Router     *router.Router
	AppService *service.AppService
	Dispatcher *notify.Dispatcher
	Scheduler  *jobs.Scheduler
	Redis      *cache.Redis
}

func NewApplication(
	r *router.Router,
	appService *service.AppService,
	dispatcher *notify.Dispatcher,
	scheduler *jobs.Scheduler,
	redisCache *cache.Redis,
) *Application {
	return &Application{
		Router:     r,
		AppService: appService,
		Dispatcher: dispatcher,
		Scheduler:  scheduler,
		Redis:      redisCache,
	}
}
