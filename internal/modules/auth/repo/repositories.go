package repo

import (
	"time"

	"os-blog-server/internal/model"
)

// UserStore 登录与会话校验所需的用户存储能力，由 user 模块的仓储实现。
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindActiveByIdentifier(identifier string) ([]model.User, error)
	UpdateLastLogin(userID uint, at time.Time) error
}
