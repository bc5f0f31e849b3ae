package handler

import (
	"net/http"

	"os-blog-server/internal/modules/access"
	moduledto "os-blog-server/internal/modules/auth/dto"
	"os-blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数错误")
		return
	}
	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Username
	}

	token, user, err := h.authService.Login(identifier, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "登录成功",
		"data": moduledto.LoginResponse{
			Token:     token,
			ExpiresIn: h.authService.TokenTTLSeconds(),
			User:      user,
		},
	})
}

// Me 返回当前登录用户资料
func (h *Handler) Me(c *gin.Context) {
	principal, ok := access.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录", "code": "unauthorized"})
		return
	}

	user, err := h.authService.Me(principal.UserID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户信息失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}
