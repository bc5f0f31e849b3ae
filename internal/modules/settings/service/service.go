package service

import (
	"os-blog-server/internal/modules/settings/repo"
	platformservice "os-blog-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	settingStore repo.SettingStore
	blogStore    repo.BlogSettingsStore
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore, blogStore repo.BlogSettingsStore) *Service {
	return &Service{
		AppService:   appService,
		settingStore: settingStore,
		blogStore:    blogStore,
	}
}
