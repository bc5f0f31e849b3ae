package service

import (
	"testing"

	"os-blog-server/internal/consts"
	platformservice "os-blog-server/internal/platform/service"
)

// 测试内容：验证验证码关闭时校验直接通过且不能生成。
func TestCaptcha_Disabled(t *testing.T) {
	gdb := setupTestDB(t)
	setSetting(t, gdb, consts.ConfigCommentCaptchaEnabled, "false")

	if err := testService.VerifyCaptcha("", ""); err != nil {
		t.Fatalf("期望关闭时校验通过，实际为 %v", err)
	}
	if _, _, err := testService.GenerateCaptcha(); !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望关闭时生成返回校验错误，实际为 %v", err)
	}
}

// 测试内容：验证开启验证码后缺失或错误的答案被拒绝，正确答案只能使用一次。
func TestCaptcha_Enabled(t *testing.T) {
	gdb := setupTestDB(t)
	setSetting(t, gdb, consts.ConfigCommentCaptchaEnabled, "true")

	if err := testService.VerifyCaptcha("", ""); !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望缺少验证码时返回校验错误，实际为 %v", err)
	}

	id, answer := generateWithAnswer(t)
	if err := testService.VerifyCaptcha(id, "not-the-answer"); !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望错误答案被拒绝，实际为 %v", err)
	}

	id, answer = generateWithAnswer(t)
	if err := testService.VerifyCaptcha(id, answer); err != nil {
		t.Fatalf("期望正确答案通过，实际为 %v", err)
	}
	if err := testService.VerifyCaptcha(id, answer); err == nil {
		t.Fatalf("期望验证码只能使用一次")
	}
}

func generateWithAnswer(t *testing.T) (string, string) {
	t.Helper()
	id, _, answer, err := testService.captcha.Generate()
	if err != nil {
		t.Fatalf("生成验证码失败: %v", err)
	}
	return id, answer
}
