package service

import (
	"os-blog-server/internal/config"
	"os-blog-server/internal/modules/file/repo"
	platformservice "os-blog-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	fileStore repo.FileStore
	upload    config.UploadConfig
}

func New(appService *platformservice.AppService, fileStore repo.FileStore, upload config.UploadConfig) *Service {
	return &Service{
		AppService: appService,
		fileStore:  fileStore,
		upload:     upload,
	}
}
