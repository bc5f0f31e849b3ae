package service

import (
	"errors"
	"strings"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"

	"gorm.io/gorm"
)

// FindByID 提供跨模块用户查询能力，不存在时返回 gorm.ErrRecordNotFound。
func (s *Service) FindByID(id uint) (*model.User, error) {
	return s.userStore.FindByID(id)
}

func (s *Service) IsUsernameTaken(username string, excludeUserID *uint) (bool, error) {
	return s.userStore.FieldExists(consts.UserFieldUsername, username, excludeUserID)
}

func (s *Service) IsEmailTaken(email string, excludeUserID *uint) (bool, error) {
	return s.userStore.FieldExists(consts.UserFieldEmail, email, excludeUserID)
}

func (s *Service) getUser(id uint) (*model.User, error) {
	user, err := s.userStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("用户不存在")
		}
		return nil, platformservice.NewInternalError("获取用户失败")
	}
	return user, nil
}

// validateIdentity 校验用户名与邮箱格式并检查唯一性，字段错误先于唯一性冲突返回。
func (s *Service) validateIdentity(username, email *string, excludeUserID *uint) error {
	fields := platformservice.FieldErrors{}
	if username != nil {
		ok, msg := utils.ValidateUsername(*username)
		fields.Check("username", ok, msg)
	}
	if email != nil {
		ok, msg := utils.ValidateEmail(*email)
		fields.Check("email", ok, msg)
	}
	if err := fields.Err(); err != nil {
		return err
	}

	if username != nil {
		taken, err := s.IsUsernameTaken(*username, excludeUserID)
		if err != nil {
			return platformservice.NewInternalError("检查用户名失败")
		}
		if taken {
			return platformservice.NewConflictError("用户名已存在")
		}
	}
	if email != nil {
		taken, err := s.IsEmailTaken(*email, excludeUserID)
		if err != nil {
			return platformservice.NewInternalError("检查邮箱失败")
		}
		if taken {
			return platformservice.NewConflictError("邮箱已被使用")
		}
	}
	return nil
}

func trimmedPtr(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

func normalizedEmailPtr(v *string) *string {
	if v == nil {
		return nil
	}
	e := utils.NormalizeEmail(*v)
	return &e
}

func translateWriteError(err error, fallback string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return platformservice.NewConflictError("用户名或邮箱已存在")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError("用户不存在")
	}
	return platformservice.NewInternalError(fallback)
}
