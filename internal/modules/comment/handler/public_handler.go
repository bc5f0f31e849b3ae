package handler

import (
	"net/http"

	moduledto "os-blog-server/internal/modules/comment/dto"
	"os-blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// ListForPost 文章下已审核的评论
func (h *Handler) ListForPost(c *gin.Context) {
	postID, ok := httpx.ParseID(c, "postId")
	if !ok {
		httpx.BadRequest(c, "无效的文章ID")
		return
	}
	page, pageSize := httpx.ParsePagination(c)

	comments, total, err := h.commentService.ListApproved(postID, page, pageSize)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取评论失败")
		return
	}
	httpx.WritePage(c, moduledto.ToPublicComments(comments), total, page, pageSize)
}

// Submit 提交评论，进入审核队列
func (h *Handler) Submit(c *gin.Context) {
	postID, ok := httpx.ParseID(c, "postId")
	if !ok {
		httpx.BadRequest(c, "无效的文章ID")
		return
	}
	var req moduledto.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "参数格式错误")
		return
	}

	if h.captcha != nil {
		if err := h.captcha.VerifyCaptcha(req.CaptchaID, req.CaptchaAnswer); err != nil {
			httpx.WriteServiceError(c, err, "验证码校验失败")
			return
		}
	}

	comment, err := h.commentService.Submit(moduledto.SubmitInput{
		PostID:      postID,
		Content:     req.Content,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		ClientIP:    c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "提交评论失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "评论已提交，审核通过后显示",
		"data":    moduledto.ToPublicComment(comment),
	})
}
