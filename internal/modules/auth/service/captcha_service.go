package service

import (
	"os-blog-server/internal/consts"
	platformservice "os-blog-server/internal/platform/service"
)

// CaptchaEnabled 评论图形验证码是否开启。
func (s *Service) CaptchaEnabled() bool {
	return s.GetBool(consts.ConfigCommentCaptchaEnabled)
}

// GenerateCaptcha 生成图形验证码，返回 id 与 base64 图片。
func (s *Service) GenerateCaptcha() (string, string, error) {
	if !s.CaptchaEnabled() {
		return "", "", platformservice.NewValidationError("验证码未开启")
	}
	id, b64s, _, err := s.captcha.Generate()
	if err != nil {
		return "", "", platformservice.NewInternalError("验证码生成失败")
	}
	return id, b64s, nil
}

// VerifyCaptcha 校验验证码。未开启时直接通过；答案校验一次即失效。
func (s *Service) VerifyCaptcha(id, answer string) error {
	if !s.CaptchaEnabled() {
		return nil
	}
	if id == "" || answer == "" {
		return platformservice.NewFieldValidationError("请填写验证码", map[string]string{"captcha_answer": "请填写验证码"})
	}
	if !s.captcha.Verify(id, answer) {
		return platformservice.NewFieldValidationError("验证码错误", map[string]string{"captcha_answer": "验证码错误"})
	}
	return nil
}
