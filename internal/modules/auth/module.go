package auth

import (
	"os-blog-server/internal/modules/auth/handler"
	"os-blog-server/internal/modules/auth/repo"
	"os-blog-server/internal/modules/auth/service"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore, tokens *utils.TokenCodec, captcha *utils.Captcha) *Module {
	moduleService := service.New(appService, userStore, tokens, captcha)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
