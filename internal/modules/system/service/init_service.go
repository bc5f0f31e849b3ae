package service

import (
	"errors"
	"strings"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	moduledto "os-blog-server/internal/modules/system/dto"
	"os-blog-server/internal/modules/system/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

// SetupRequired 返回系统是否仍需要初始化。
func (s *Service) SetupRequired() bool {
	return s.GetBool(consts.ConfigAllowInit)
}

// SetupAdmin 创建首个管理员与博客设置。只能成功一次，并发请求中只有一个会生效。
func (s *Service) SetupAdmin(req moduledto.SetupAdminRequest) (*model.User, error) {
	if !s.SetupRequired() {
		return nil, platformservice.NewForbiddenError("已初始化，无法重复初始化")
	}

	username := strings.TrimSpace(req.Username)
	email := utils.NormalizeEmail(req.Email)
	title := strings.TrimSpace(req.BlogTitle)

	fields := platformservice.FieldErrors{}
	ok, msg := utils.ValidateUsername(username)
	fields.Check("username", ok, msg)
	ok, msg = utils.ValidateEmail(email)
	fields.Check("email", ok, msg)
	ok, msg = utils.ValidatePassword(req.Password)
	fields.Check("password", ok, msg)
	ok, msg = utils.ValidateLength(title, "博客标题", 1, 255)
	fields.Check("blog_title", ok, msg)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	if s.identity != nil {
		if taken, err := s.identity.IsUsernameTaken(username, nil); err != nil {
			return nil, platformservice.NewInternalError("初始化失败")
		} else if taken {
			return nil, platformservice.NewConflictError("用户名已存在")
		}
		if taken, err := s.identity.IsEmailTaken(email, nil); err != nil {
			return nil, platformservice.NewInternalError("初始化失败")
		} else if taken {
			return nil, platformservice.NewConflictError("邮箱已被使用")
		}
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, platformservice.NewInternalError("初始化失败")
	}

	admin := &model.User{
		Username:  username,
		Email:     email,
		Password:  hashed,
		Role:      consts.RoleAdmin,
		Active:    true,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	blog := &model.BlogSettings{
		Title:       title,
		Description: strings.TrimSpace(req.BlogDescription),
	}

	err = s.systemStore.InitializeSystem(admin, blog)
	s.ClearCache()
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyInitialized) {
			return nil, platformservice.NewForbiddenError("已初始化，无法重复初始化")
		}
		logger.Errorf("❌ 系统初始化失败: %v", err)
		return nil, platformservice.NewInternalError("初始化失败")
	}

	logger.Infof("✅ 系统初始化完成，管理员: %s", admin.Username)
	return admin, nil
}
