package handler

import (
	"net/http"
	"strconv"

	moduledto "os-blog-server/internal/modules/comment/dto"
	"os-blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// ListForModeration 审核队列
func (h *Handler) ListForModeration(c *gin.Context) {
	page, pageSize := httpx.ParsePagination(c)

	var postID *uint
	if raw := c.Query("post_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httpx.BadRequest(c, "post_id 参数无效")
			return
		}
		id := uint(v)
		postID = &id
	}

	comments, total, err := h.commentService.ListForModeration(moduledto.ModerationListRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		PostID:   postID,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取评论失败")
		return
	}
	httpx.WritePage(c, comments, total, page, pageSize)
}

func (h *Handler) Approve(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的评论ID")
		return
	}
	comment, err := h.commentService.Approve(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "审核评论失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已通过", "data": comment})
}

func (h *Handler) MarkSpam(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的评论ID")
		return
	}
	comment, err := h.commentService.MarkSpam(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "标记垃圾评论失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已标记为垃圾评论", "data": comment})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的评论ID")
		return
	}
	if err := h.commentService.Delete(id); err != nil {
		httpx.WriteServiceError(c, err, "删除评论失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
