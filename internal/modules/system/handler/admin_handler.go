package handler

import (
	"net/http"

	"os-blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetServerStats 获取后台概览统计信息
func (h *Handler) GetServerStats(c *gin.Context) {
	stats, err := h.systemService.AdminGetServerStats()
	if err != nil {
		httpx.WriteServiceError(c, err, "统计数据失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
