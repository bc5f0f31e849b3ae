package access

import (
	"errors"
	"fmt"

	"os-blog-server/internal/model"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"

	"gorm.io/gorm"
)

// 认证失败原因，随错误响应的 reason 字段和 X-Auth-Error 头返回。
const (
	ReasonTokenMissing           = "token_missing"
	ReasonTokenMalformed         = "token_malformed"
	ReasonTokenExpired           = "token_expired"
	ReasonTokenInvalid           = "token_invalid"
	ReasonUserNotFound           = "user_not_found"
	ReasonAccountDeactivated     = "account_deactivated"
	ReasonPasswordChangeRequired = "password_change_required"
	ReasonInsufficientRole       = "insufficient_role"
)

type TokenDecoder interface {
	Decode(token string) (uint, error)
}

type UserLookup interface {
	FindByID(id uint) (*model.User, error)
}

type Chain struct {
	tokens TokenDecoder
	users  UserLookup
}

func NewChain(tokens TokenDecoder, users UserLookup) *Chain {
	return &Chain{tokens: tokens, users: users}
}

type evaluation struct {
	rawToken string
	userID   uint
	user     *model.User
}

type stageFunc func(c *Chain, ev *evaluation, policy Policy) error

var stageFuncs = map[Stage]stageFunc{
	StageToken:              (*Chain).checkToken,
	StageFreshUser:          (*Chain).loadUser,
	StageActive:             (*Chain).checkActive,
	StagePasswordStrict:     (*Chain).checkPasswordStrict,
	StagePasswordPermissive: func(*Chain, *evaluation, Policy) error { return nil },
	StageRole:               (*Chain).checkRole,
}

// Evaluate 按 policy 的阶段顺序执行判定。
// 可选策略下未携带令牌返回 (nil, nil)；其余失败返回带 Reason 的 ServiceError。
func (c *Chain) Evaluate(rawToken string, policy Policy) (*Principal, error) {
	if policy.Optional && rawToken == "" {
		return nil, nil
	}

	ev := &evaluation{rawToken: rawToken}
	for _, stage := range policy.Stages {
		fn, ok := stageFuncs[stage]
		if !ok {
			return nil, platformservice.NewInternalError(fmt.Sprintf("未知的访问判定阶段: %s", stage))
		}
		if err := fn(c, ev, policy); err != nil {
			return nil, err
		}
	}

	if ev.user == nil {
		return nil, platformservice.NewInternalError("访问策略缺少用户读取阶段")
	}
	return newPrincipal(ev.user), nil
}

func (c *Chain) checkToken(ev *evaluation, _ Policy) error {
	if ev.rawToken == "" {
		return unauthorized("需要认证才能访问", ReasonTokenMissing)
	}

	userID, err := c.tokens.Decode(ev.rawToken)
	if err != nil {
		decodeErr, ok := utils.AsDecodeError(err)
		if !ok {
			return unauthorized("Token 无效", ReasonTokenInvalid)
		}
		switch decodeErr.Kind {
		case utils.TokenExpired:
			return unauthorized("Token 已过期", ReasonTokenExpired)
		case utils.TokenMalformed:
			return unauthorized("Token 格式错误", ReasonTokenMalformed)
		default:
			return unauthorized("Token 无效", ReasonTokenInvalid)
		}
	}
	ev.userID = userID
	return nil
}

func (c *Chain) loadUser(ev *evaluation, _ Policy) error {
	user, err := c.users.FindByID(ev.userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unauthorized("用户不存在", ReasonUserNotFound)
		}
		return platformservice.NewInternalError("读取用户信息失败")
	}
	ev.user = user
	return nil
}

func (c *Chain) checkActive(ev *evaluation, _ Policy) error {
	if !ev.user.Active {
		return unauthorized("账号已停用", ReasonAccountDeactivated)
	}
	return nil
}

func (c *Chain) checkPasswordStrict(ev *evaluation, _ Policy) error {
	if ev.user.MustChangePassword {
		return unauthorized("请先修改密码", ReasonPasswordChangeRequired)
	}
	return nil
}

func (c *Chain) checkRole(ev *evaluation, policy Policy) error {
	if !policy.allowsRole(ev.user.Role) {
		return platformservice.WithReason(platformservice.NewForbiddenError("权限不足"), ReasonInsufficientRole)
	}
	return nil
}

func unauthorized(message, reason string) error {
	return platformservice.WithReason(platformservice.NewUnauthorizedError(message), reason)
}

// ReasonOf 返回判定错误中的原因，非判定错误返回空串。
func ReasonOf(err error) string {
	if serviceErr, ok := platformservice.AsServiceError(err); ok {
		return serviceErr.Reason
	}
	return ""
}
