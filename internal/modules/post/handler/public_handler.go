package handler

import (
	"net/http"
	"strconv"

	"os-blog-server/internal/modules/access"
	"os-blog-server/internal/modules/common/httpx"
	moduledto "os-blog-server/internal/modules/post/dto"

	"github.com/gin-gonic/gin"
)

// ListPublished 公开文章列表
func (h *Handler) ListPublished(c *gin.Context) {
	page, pageSize := httpx.ParsePagination(c)

	var authorID *uint
	if raw := c.Query("author"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httpx.BadRequest(c, "author 参数无效")
			return
		}
		id := uint(v)
		authorID = &id
	}

	posts, total, err := h.postService.ListPublished(moduledto.PublishedListRequest{
		Page:         page,
		PageSize:     pageSize,
		CategorySlug: c.Query("category"),
		TagSlug:      c.Query("tag"),
		AuthorID:     authorID,
		Search:       c.Query("search"),
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文章列表失败")
		return
	}
	httpx.WritePage(c, moduledto.ToPublicPosts(posts), total, page, pageSize)
}

// GetBySlug 公开读取文章；登录的作者或管理员可以预览未发布文章。
func (h *Handler) GetBySlug(c *gin.Context) {
	viewer, _ := access.PrincipalFrom(c)

	post, err := h.postService.GetBySlug(viewer, c.Param("slug"))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": moduledto.ToPublicPost(post)})
}
