package handler

import (
	"net/http"

	"os-blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetPublicSettings 前台博客资料
func (h *Handler) GetPublicSettings(c *gin.Context) {
	settings, err := h.settingsService.PublicBlogSettings()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取博客设置失败")
		return
	}
	c.JSON(http.StatusOK, settings)
}
