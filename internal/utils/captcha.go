package utils

import "github.com/mojocn/base64Captcha"

// Captcha 图形验证码，答案保存在进程内存中，校验一次即失效。
type Captcha struct {
	store  base64Captcha.Store
	driver base64Captcha.Driver
}

func NewCaptcha() *Captcha {
	return &Captcha{
		store: base64Captcha.DefaultMemStore,
		// 高 80 宽 240，4 位数字，最大倾斜 0.7，80 个干扰点
		driver: base64Captcha.NewDriverDigit(80, 240, 4, 0.7, 80),
	}
}

// Generate 生成验证码，返回 id、base64 图片和答案。
func (c *Captcha) Generate() (id, b64s, answer string, err error) {
	return base64Captcha.NewCaptcha(c.driver, c.store).Generate()
}

func (c *Captcha) Verify(id, answer string) bool {
	if id == "" || answer == "" {
		return false
	}
	return c.store.Verify(id, answer, true)
}
