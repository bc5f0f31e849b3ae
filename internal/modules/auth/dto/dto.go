package dto

import "os-blog-server/internal/model"

type LoginRequest struct {
	// Identifier 可以是用户名或邮箱；兼容旧客户端提交的 username 字段。
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse 登录成功后的令牌与用户资料。
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expires_in"`
	User      *model.User `json:"user"`
}

type CaptchaResponse struct {
	Enabled      bool   `json:"enabled"`
	CaptchaID    string `json:"captcha_id,omitempty"`
	CaptchaImage string `json:"captcha_image,omitempty"`
}
