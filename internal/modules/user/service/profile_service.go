package service

import (
	"strings"
	"time"

	"os-blog-server/internal/model"
	moduledto "os-blog-server/internal/modules/user/dto"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

func (s *Service) GetProfile(userID uint) (*model.User, error) {
	return s.getUser(userID)
}

// UpdateProfile 用户修改自己的姓名、邮箱与头像。
func (s *Service) UpdateProfile(userID uint, req moduledto.UpdateProfileRequest) (*model.User, error) {
	if _, err := s.getUser(userID); err != nil {
		return nil, err
	}

	email := normalizedEmailPtr(req.Email)
	if err := s.validateIdentity(nil, email, &userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if email != nil {
		updates["email"] = *email
	}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.ProfilePicture != nil {
		updates["profile_picture"] = strings.TrimSpace(*req.ProfilePicture)
	}
	if len(updates) > 0 {
		if err := s.userStore.UpdateByID(userID, updates); err != nil {
			return nil, translateWriteError(err, "更新资料失败")
		}
	}
	return s.getUser(userID)
}

// ChangePassword 修改密码。临时密码账号无需提供当前密码；成功后清除改密要求。
func (s *Service) ChangePassword(userID uint, req moduledto.ChangePasswordRequest) error {
	user, err := s.getUser(userID)
	if err != nil {
		return err
	}

	if !user.IsTemporaryPassword {
		if req.CurrentPassword == "" || !utils.CheckPassword(user.Password, req.CurrentPassword) {
			return platformservice.NewFieldValidationError("当前密码错误", map[string]string{"current_password": "当前密码错误"})
		}
	}
	if ok, msg := utils.ValidatePassword(req.NewPassword); !ok {
		return platformservice.NewFieldValidationError(msg, map[string]string{"new_password": msg})
	}
	if utils.CheckPassword(user.Password, req.NewPassword) {
		return platformservice.NewFieldValidationError("新密码不能与当前密码相同", map[string]string{"new_password": "新密码不能与当前密码相同"})
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return platformservice.NewInternalError("密码加密失败")
	}
	now := time.Now()
	err = s.userStore.UpdateByID(userID, map[string]interface{}{
		"password":              hashed,
		"is_temporary_password": false,
		"must_change_password":  false,
		"password_changed_at":   &now,
	})
	if err != nil {
		return translateWriteError(err, "修改密码失败")
	}
	return nil
}
