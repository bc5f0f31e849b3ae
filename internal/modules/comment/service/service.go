package service

import (
	"time"

	"os-blog-server/internal/modules/comment/repo"
	platformservice "os-blog-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	commentStore repo.CommentStore
	now          func() time.Time
}

func New(appService *platformservice.AppService, commentStore repo.CommentStore) *Service {
	return &Service{
		AppService:   appService,
		commentStore: commentStore,
		now:          time.Now,
	}
}
