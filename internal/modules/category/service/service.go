package service

import (
	"os-blog-server/internal/modules/category/repo"
	platformservice "os-blog-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	categoryStore repo.CategoryStore
}

func New(appService *platformservice.AppService, categoryStore repo.CategoryStore) *Service {
	return &Service{
		AppService:    appService,
		categoryStore: categoryStore,
	}
}
