package handler

import (
	"net/http"

	moduledto "os-blog-server/internal/modules/category/dto"
	"os-blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取分类列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (h *Handler) GetBySlug(c *gin.Context) {
	category, err := h.categoryService.GetBySlug(c.Param("slug"))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取分类失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

func (h *Handler) Create(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req moduledto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}

	category, err := h.categoryService.Create(principal, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建分类失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "创建成功", "data": category})
}

func (h *Handler) Update(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的分类ID")
		return
	}
	var req moduledto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}

	category, err := h.categoryService.Update(principal, id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新分类失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "data": category})
}

func (h *Handler) Delete(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的分类ID")
		return
	}

	if err := h.categoryService.Delete(principal, id); err != nil {
		httpx.WriteServiceError(c, err, "删除分类失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
