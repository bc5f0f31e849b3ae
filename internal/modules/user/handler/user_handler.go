package handler

import (
	"net/http"

	"os-blog-server/internal/modules/common/httpx"
	moduledto "os-blog-server/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// GetSelfInfo 获取当前用户资料
func (h *Handler) GetSelfInfo(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(p.UserID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户信息失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// UpdateSelfInfo 修改当前用户资料
func (h *Handler) UpdateSelfInfo(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req moduledto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数错误")
		return
	}

	user, err := h.userService.UpdateProfile(p.UserID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新资料失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "data": user})
}

// ChangePassword 修改当前用户密码
func (h *Handler) ChangePassword(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req moduledto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数错误")
		return
	}

	if err := h.userService.ChangePassword(p.UserID, req); err != nil {
		httpx.WriteServiceError(c, err, "修改密码失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "密码修改成功"})
}
