// Package access 实现请求级的访问判定链。
//
// 每个受保护路由声明一个 Policy，Policy 只是一组按顺序执行的阶段（Stage）。
// Chain.Evaluate 是唯一的解释器：逐个执行阶段，任一阶段失败立即短路返回。
// 用户记录在每次请求时重新读取，角色和状态从不信任令牌或缓存。
package access

import "os-blog-server/internal/consts"

type Stage string

const (
	// StageToken 令牌存在且可解码。
	StageToken Stage = "token"
	// StageFreshUser 按令牌中的用户 ID 重新读取用户记录。
	StageFreshUser Stage = "fresh_user"
	// StageActive 账号处于启用状态。
	StageActive Stage = "active"
	// StagePasswordStrict 需要修改密码的账号被拒绝。
	StagePasswordStrict Stage = "password_strict"
	// StagePasswordPermissive 允许需要修改密码的账号通过（仅用于改密接口）。
	StagePasswordPermissive Stage = "password_permissive"
	// StageRole 角色必须在 Policy.Roles 中。
	StageRole Stage = "role"
)

type Policy struct {
	Name     string
	Stages   []Stage
	Roles    []string
	Optional bool
}

var (
	// Full 常规受保护接口。
	Full = Policy{
		Name:   "full",
		Stages: []Stage{StageToken, StageFreshUser, StageActive, StagePasswordStrict},
	}

	// AllowTemporaryPassword 允许临时密码账号访问，用于修改密码。
	AllowTemporaryPassword = Policy{
		Name:   "allow_temporary_password",
		Stages: []Stage{StageToken, StageFreshUser, StageActive, StagePasswordPermissive},
	}

	// Optional 可匿名访问；带了令牌但校验失败时按匿名处理并给出认证错误信号。
	Optional = Policy{
		Name:     "optional",
		Stages:   []Stage{StageToken, StageFreshUser, StageActive},
		Optional: true,
	}

	// AdminOnly 常规受保护接口且要求管理员角色。
	AdminOnly = Full.WithRoles(consts.RoleAdmin)
)

// WithRoles 返回追加了角色阶段的新 Policy，原 Policy 不受影响。
func (p Policy) WithRoles(roles ...string) Policy {
	stages := make([]Stage, 0, len(p.Stages)+1)
	for _, s := range p.Stages {
		if s != StageRole {
			stages = append(stages, s)
		}
	}
	stages = append(stages, StageRole)

	return Policy{
		Name:     p.Name + "+roles",
		Stages:   stages,
		Roles:    append([]string(nil), roles...),
		Optional: p.Optional,
	}
}

func (p Policy) allowsRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
