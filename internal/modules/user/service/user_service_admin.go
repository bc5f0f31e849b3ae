package service

import (
	"strings"
	"time"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	moduledto "os-blog-server/internal/modules/user/dto"
	"os-blog-server/internal/modules/user/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

// AdminListUsers 分页查询用户。
func (s *Service) AdminListUsers(req moduledto.AdminUserListRequest) ([]model.User, int64, error) {
	if req.Role != "" && !consts.ValidRole(req.Role) {
		return nil, 0, platformservice.NewValidationError("无效的角色")
	}
	users, total, err := s.userStore.List(repo.UserListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		Role:     req.Role,
		Active:   req.Active,
	})
	if err != nil {
		return nil, 0, platformservice.NewInternalError("获取用户列表失败")
	}
	return users, total, nil
}

func (s *Service) AdminGetUser(id uint) (*model.User, error) {
	return s.getUser(id)
}

// AdminCreateUser 创建用户。管理员设置的密码视为临时密码，首次登录后必须修改。
func (s *Service) AdminCreateUser(req moduledto.CreateUserRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := utils.NormalizeEmail(req.Email)
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = consts.RoleAuthor
	}

	fields := platformservice.FieldErrors{}
	ok, msg := utils.ValidatePassword(req.Password)
	fields.Check("password", ok, msg)
	fields.Check("role", consts.ValidRole(role), "无效的角色")
	if err := fields.Err(); err != nil {
		return nil, err
	}
	if err := s.validateIdentity(&username, &email, nil); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, platformservice.NewInternalError("密码加密失败")
	}

	user := &model.User{
		Username:            username,
		Email:               email,
		Password:            hashed,
		Role:                role,
		Active:              true,
		IsTemporaryPassword: true,
		MustChangePassword:  true,
		FirstName:           strings.TrimSpace(req.FirstName),
		LastName:            strings.TrimSpace(req.LastName),
	}
	if err := s.userStore.Create(user); err != nil {
		return nil, translateWriteError(err, "创建用户失败")
	}
	return user, nil
}

// AdminUpdateUser 更新用户资料、角色与状态。管理员不能停用自己或取消自己的管理员角色。
func (s *Service) AdminUpdateUser(actorID, id uint, req moduledto.UpdateUserRequest) (*model.User, error) {
	if _, err := s.getUser(id); err != nil {
		return nil, err
	}

	username := trimmedPtr(req.Username)
	email := normalizedEmailPtr(req.Email)
	if req.Role != nil && !consts.ValidRole(*req.Role) {
		return nil, platformservice.NewFieldValidationError("参数校验失败", map[string]string{"role": "无效的角色"})
	}
	if actorID == id {
		if req.Active != nil && !*req.Active {
			return nil, platformservice.NewForbiddenError("不能停用自己的账号")
		}
		if req.Role != nil && *req.Role != consts.RoleAdmin {
			return nil, platformservice.NewForbiddenError("不能取消自己的管理员权限")
		}
	}
	if err := s.validateIdentity(username, email, &id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if username != nil {
		updates["username"] = *username
	}
	if email != nil {
		updates["email"] = *email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}

	if len(updates) > 0 {
		if err := s.userStore.UpdateByID(id, updates); err != nil {
			return nil, translateWriteError(err, "更新用户失败")
		}
	}
	return s.getUser(id)
}

// AdminResetPassword 为用户设置新的临时密码，并要求其下次登录后修改。
func (s *Service) AdminResetPassword(id uint, newPassword string) error {
	if _, err := s.getUser(id); err != nil {
		return err
	}
	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return platformservice.NewFieldValidationError(msg, map[string]string{"new_password": msg})
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return platformservice.NewInternalError("密码加密失败")
	}
	now := time.Now()
	err = s.userStore.UpdateByID(id, map[string]interface{}{
		"password":              hashed,
		"is_temporary_password": true,
		"must_change_password":  true,
		"password_reset_at":     &now,
	})
	if err != nil {
		return translateWriteError(err, "重置密码失败")
	}
	return nil
}

// AdminToggleStatus 切换用户启用状态。停用后该用户已签发的令牌在下一次请求时即失效。
func (s *Service) AdminToggleStatus(actorID, id uint) (*model.User, error) {
	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}
	if actorID == id {
		return nil, platformservice.NewForbiddenError("不能停用自己的账号")
	}
	if err := s.userStore.UpdateByID(id, map[string]interface{}{"active": !user.Active}); err != nil {
		return nil, translateWriteError(err, "更新用户状态失败")
	}
	user.Active = !user.Active
	return user, nil
}

// AdminDeleteUser 删除用户。仍拥有文章或分类的用户不能删除。
func (s *Service) AdminDeleteUser(actorID, id uint) error {
	if actorID == id {
		return platformservice.NewForbiddenError("不能删除自己的账号")
	}
	if _, err := s.getUser(id); err != nil {
		return err
	}

	posts, categories, err := s.userStore.CountOwnedContent(id)
	if err != nil {
		return platformservice.NewInternalError("检查用户内容失败")
	}
	if posts > 0 || categories > 0 {
		return platformservice.NewConflictError("该用户仍有文章或分类，无法删除")
	}

	if err := s.userStore.DeleteByID(id); err != nil {
		return translateWriteError(err, "删除用户失败")
	}

	if s.fileCleaner != nil {
		if err := s.fileCleaner.DeleteAllByUploader(id); err != nil {
			logger.Warningf("⚠️ 清理用户 %d 的上传文件失败: %v", id, err)
		}
	}
	return nil
}
