package handler

import (
	"net/http"

	"os-blog-server/internal/modules/common/httpx"
	moduledto "os-blog-server/internal/modules/system/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSetupState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"required": h.systemService.SetupRequired(),
	})
}

func (h *Handler) SetupAdmin(c *gin.Context) {
	var req moduledto.SetupAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}

	admin, err := h.systemService.SetupAdmin(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "初始化失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "初始化成功",
		"data":    admin,
	})
}
