package comment

import (
	"os-blog-server/internal/modules/comment/handler"
	"os-blog-server/internal/modules/comment/repo"
	"os-blog-server/internal/modules/comment/service"
	platformservice "os-blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, commentStore repo.CommentStore, captcha handler.CaptchaVerifier) *Module {
	moduleService := service.New(appService, commentStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService, captcha),
	}
}
