package service

import (
	"os-blog-server/internal/modules/auth/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
	tokens    *utils.TokenCodec
	captcha   *utils.Captcha
}

func New(appService *platformservice.AppService, userStore repo.UserStore, tokens *utils.TokenCodec, captcha *utils.Captcha) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
		tokens:     tokens,
		captcha:    captcha,
	}
}
