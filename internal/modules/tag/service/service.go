package service

import (
	"os-blog-server/internal/modules/tag/repo"
	platformservice "os-blog-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	tagStore repo.TagStore
}

func New(appService *platformservice.AppService, tagStore repo.TagStore) *Service {
	return &Service{
		AppService: appService,
		tagStore:   tagStore,
	}
}
