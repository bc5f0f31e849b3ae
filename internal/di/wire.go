//go:build wireinject
// +build wireinject

package di

import (
	"os-blog-server/internal/config"
	"os-blog-server/internal/modules"
	"os-blog-server/internal/router"
	"os-blog-server/internal/utils"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB, cfg config.Config) (*Application, error) {
	wire.Build(
		modules.NewStores,
		provideAppService,
		provideTokenCodec,
		provideUploadConfig,
		provideRedis,
		provideDispatcher,
		utils.NewCaptcha,
		modules.New,
		provideScheduler,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
