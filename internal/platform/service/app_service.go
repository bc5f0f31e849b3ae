package service

import (
	"sync"

	settingsrepo "os-blog-server/internal/modules/settings/repo"
)

// AppService 各业务模块共享的运行时能力，目前负责带缓存的运行时配置读取。
type AppService struct {
	settingStore  settingsrepo.SettingStore
	settingsCache sync.Map
}

func NewAppService(settingStore settingsrepo.SettingStore) *AppService {
	return &AppService{settingStore: settingStore}
}
