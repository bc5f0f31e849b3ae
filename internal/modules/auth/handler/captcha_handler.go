package handler

import (
	"net/http"

	moduledto "os-blog-server/internal/modules/auth/dto"
	"os-blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetCaptcha 获取图形验证码；未开启时只返回 enabled=false。
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.authService.CaptchaEnabled() {
		c.JSON(http.StatusOK, moduledto.CaptchaResponse{Enabled: false})
		return
	}

	id, b64s, err := h.authService.GenerateCaptcha()
	if err != nil {
		httpx.WriteServiceError(c, err, "验证码生成失败")
		return
	}

	c.JSON(http.StatusOK, moduledto.CaptchaResponse{
		Enabled:      true,
		CaptchaID:    id,
		CaptchaImage: b64s,
	})
}
