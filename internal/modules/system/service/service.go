package service

import (
	"os-blog-server/internal/modules/system/repo"
	platformservice "os-blog-server/internal/platform/service"
)

// IdentityChecker 初始化时检查用户名与邮箱占用，由 user 模块提供。
type IdentityChecker interface {
	IsUsernameTaken(username string, excludeUserID *uint) (bool, error)
	IsEmailTaken(email string, excludeUserID *uint) (bool, error)
}

type Service struct {
	*platformservice.AppService
	systemStore repo.SystemStore
	identity    IdentityChecker
}

func New(appService *platformservice.AppService, systemStore repo.SystemStore, identity IdentityChecker) *Service {
	return &Service{
		AppService:  appService,
		systemStore: systemStore,
		identity:    identity,
	}
}
