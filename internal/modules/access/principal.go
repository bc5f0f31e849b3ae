package access

import (
	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	principalKey = "access.principal"
	authErrorKey = "access.auth_error"
)

// Principal 通过判定链后的调用者身份，由请求开始时读取的用户记录构造。
type Principal struct {
	UserID             uint   `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
}

func newPrincipal(u *model.User) *Principal {
	return &Principal{
		UserID:             u.ID,
		Username:           u.Username,
		Email:              u.Email,
		Role:               u.Role,
		MustChangePassword: u.MustChangePassword,
	}
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == consts.RoleAdmin
}

// CanManage 资源所有者或管理员可以管理该资源。
func (p *Principal) CanManage(ownerID uint) bool {
	if p == nil {
		return false
	}
	return p.IsAdmin() || p.UserID == ownerID
}

// SetPrincipal 把判定结果写入请求上下文。
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom 读取当前请求的调用者；匿名请求返回 nil, false。
func PrincipalFrom(c *gin.Context) (*Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok && p != nil
}

// SetAuthError 记录可选认证下被忽略的认证失败原因。
func SetAuthError(c *gin.Context, reason string) {
	c.Set(authErrorKey, reason)
}

// AuthErrorFrom 可选认证下，带了令牌但校验失败时返回失败原因。
func AuthErrorFrom(c *gin.Context) (string, bool) {
	reason := c.GetString(authErrorKey)
	return reason, reason != ""
}
