package handler

import (
	"net/http"
	"strconv"

	"os-blog-server/internal/modules/common/httpx"
	moduledto "os-blog-server/internal/modules/post/dto"

	"github.com/gin-gonic/gin"
)

// AdminList 后台文章列表
func (h *Handler) AdminList(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	page, pageSize := httpx.ParsePagination(c)

	var published *bool
	if raw := c.Query("published"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httpx.BadRequest(c, "published 参数无效")
			return
		}
		published = &v
	}

	posts, total, err := h.postService.ListForAdmin(principal, moduledto.AdminListRequest{
		Page:      page,
		PageSize:  pageSize,
		Search:    c.Query("search"),
		Published: published,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文章列表失败")
		return
	}
	httpx.WritePage(c, posts, total, page, pageSize)
}

func (h *Handler) Create(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req moduledto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}

	post, err := h.postService.Create(principal, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建文章失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "创建成功", "data": post})
}

func (h *Handler) Get(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的文章ID")
		return
	}

	post, err := h.postService.GetByID(principal, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": post})
}

func (h *Handler) Update(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的文章ID")
		return
	}
	var req moduledto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}

	post, err := h.postService.Update(principal, id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "data": post})
}

func (h *Handler) Delete(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的文章ID")
		return
	}

	if err := h.postService.Delete(principal, id); err != nil {
		httpx.WriteServiceError(c, err, "删除文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
