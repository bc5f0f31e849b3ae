package service

import (
	"strings"
	"time"

	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

// invalidCredentialsMessage 所有登录失败共用同一条消息，避免泄露账号是否存在或是否被停用。
const invalidCredentialsMessage = "用户名或密码错误"

// Login 校验用户名或邮箱与密码，成功后签发登录令牌。
//
// 标识符同时匹配用户名与邮箱（邮箱不区分大小写），只接受恰好一个启用的账号。
// 未匹配到账号时仍执行一次 bcrypt 比较，使各失败路径耗时接近。
func (s *Service) Login(identifier, password string) (string, *model.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", nil, platformservice.NewUnauthorizedError(invalidCredentialsMessage)
	}

	users, err := s.userStore.FindActiveByIdentifier(identifier)
	if err != nil {
		logger.Errorf("❌ 查询登录用户失败: %v", err)
		return "", nil, platformservice.NewInternalError("登录失败，请稍后重试")
	}
	if len(users) != 1 {
		utils.BurnPasswordCheck(password)
		return "", nil, platformservice.NewUnauthorizedError(invalidCredentialsMessage)
	}

	user := users[0]
	if !utils.CheckPassword(user.Password, password) {
		return "", nil, platformservice.NewUnauthorizedError(invalidCredentialsMessage)
	}

	token, err := s.tokens.Encode(user.ID)
	if err != nil {
		logger.Errorf("❌ 签发登录令牌失败: %v", err)
		return "", nil, platformservice.NewInternalError("登录失败，请稍后重试")
	}

	now := time.Now()
	user.LastLoginAt = &now
	go s.recordLastLogin(user.ID, now)

	return token, &user, nil
}

// recordLastLogin 尽力更新最后登录时间，失败只记录日志，不影响登录结果。
func (s *Service) recordLastLogin(userID uint, at time.Time) {
	if err := s.userStore.UpdateLastLogin(userID, at); err != nil {
		logger.Warningf("⚠️ 更新用户 %d 最后登录时间失败: %v", userID, err)
	}
}

// TokenTTLSeconds 返回令牌有效期（秒）。
func (s *Service) TokenTTLSeconds() int64 {
	return int64(s.tokens.TTL() / time.Second)
}

// Me 返回当前登录用户的最新资料。
func (s *Service) Me(userID uint) (*model.User, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		return nil, platformservice.NewNotFoundError("用户不存在")
	}
	return user, nil
}
