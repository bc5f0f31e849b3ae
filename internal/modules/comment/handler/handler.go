package handler

import commentservice "os-blog-server/internal/modules/comment/service"

// CaptchaVerifier 校验评论验证码，由 auth 模块提供；未开启时直接通过。
type CaptchaVerifier interface {
	VerifyCaptcha(id, answer string) error
}

type Handler struct {
	commentService *commentservice.Service
	captcha        CaptchaVerifier
}

func New(commentService *commentservice.Service, captcha CaptchaVerifier) *Handler {
	return &Handler{commentService: commentService, captcha: captcha}
}
