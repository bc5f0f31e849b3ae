package handler

import (
	"net/http"
	"strconv"

	"os-blog-server/internal/modules/common/httpx"
	moduledto "os-blog-server/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// GetUserList 获取用户列表
func (h *Handler) GetUserList(c *gin.Context) {
	page, pageSize := httpx.ParsePagination(c)

	var active *bool
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httpx.BadRequest(c, "active 参数无效")
			return
		}
		active = &v
	}

	users, total, err := h.userService.AdminListUsers(moduledto.AdminUserListRequest{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
		Role:     c.Query("role"),
		Active:   active,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户列表失败")
		return
	}

	httpx.WritePage(c, users, total, page, pageSize)
}

// GetUserDetail 获取指定用户信息
func (h *Handler) GetUserDetail(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的用户ID")
		return
	}

	user, err := h.userService.AdminGetUser(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// CreateUser 创建用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req moduledto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}

	user, err := h.userService.AdminCreateUser(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建用户失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "创建成功", "data": user})
}

// UpdateUser 修改用户信息
func (h *Handler) UpdateUser(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的用户ID")
		return
	}

	var req moduledto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数错误")
		return
	}

	user, err := h.userService.AdminUpdateUser(actor.UserID, id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新用户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "data": user})
}

// ResetPassword 管理员重置用户密码
func (h *Handler) ResetPassword(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的用户ID")
		return
	}

	var req moduledto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数错误")
		return
	}

	if err := h.userService.AdminResetPassword(id, req.NewPassword); err != nil {
		httpx.WriteServiceError(c, err, "重置密码失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "密码已重置，用户下次登录需修改密码"})
}

// ToggleStatus 启用或停用用户
func (h *Handler) ToggleStatus(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的用户ID")
		return
	}

	user, err := h.userService.AdminToggleStatus(actor.UserID, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新用户状态失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "状态已更新", "data": user})
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的用户ID")
		return
	}

	if err := h.userService.AdminDeleteUser(actor.UserID, id); err != nil {
		httpx.WriteServiceError(c, err, "删除用户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "用户已删除"})
}
