package handler

import (
	"net/http"

	"os-blog-server/internal/modules/common/httpx"
	moduledto "os-blog-server/internal/modules/tag/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) List(c *gin.Context) {
	tags, err := h.tagService.List()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取标签列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tags})
}

func (h *Handler) GetBySlug(c *gin.Context) {
	tag, err := h.tagService.GetBySlug(c.Param("slug"))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取标签失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tag})
}

func (h *Handler) Create(c *gin.Context) {
	var req moduledto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}
	tag, err := h.tagService.Create(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建标签失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "创建成功", "data": tag})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的标签ID")
		return
	}
	var req moduledto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}
	tag, err := h.tagService.Update(id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新标签失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "data": tag})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的标签ID")
		return
	}
	if err := h.tagService.Delete(id); err != nil {
		httpx.WriteServiceError(c, err, "删除标签失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
