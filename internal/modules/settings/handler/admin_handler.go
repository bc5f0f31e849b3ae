package handler

import (
	"net/http"

	"os-blog-server/internal/modules/common/httpx"
	moduledto "os-blog-server/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.AdminListSettings()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取配置失败")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var reqs []moduledto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}

	if err := h.settingsService.AdminUpdateSettings(reqs); err != nil {
		httpx.WriteServiceError(c, err, "更新失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "配置更新成功",
		"count":   len(reqs),
	})
}

func (h *Handler) GetBlogSettings(c *gin.Context) {
	settings, err := h.settingsService.AdminGetBlogSettings()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取博客设置失败")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateBlogSettings(c *gin.Context) {
	var req moduledto.UpdateBlogSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}

	settings, err := h.settingsService.AdminUpdateBlogSettings(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新博客设置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "博客设置已更新", "data": settings})
}
