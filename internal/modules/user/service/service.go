package service

import (
	"os-blog-server/internal/modules/user/repo"
	platformservice "os-blog-server/internal/platform/service"
)

// FileCleaner 删除用户时清理其上传文件。
type FileCleaner interface {
	DeleteAllByUploader(userID uint) error
}

type Service struct {
	*platformservice.AppService
	userStore   repo.UserStore
	fileCleaner FileCleaner
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
	}
}

func (s *Service) SetFileCleaner(fileCleaner FileCleaner) {
	s.fileCleaner = fileCleaner
}
