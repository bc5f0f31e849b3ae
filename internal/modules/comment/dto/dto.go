package dto

import (
	"time"

	"os-blog-server/internal/model"
)

type SubmitCommentRequest struct {
	Content       string `json:"content" binding:"required"`
	AuthorName    string `json:"author_name" binding:"required"`
	AuthorEmail   string `json:"author_email" binding:"required"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

// SubmitInput 提交评论所需的全部信息，IP 与 UA 由处理器从请求中取得。
type SubmitInput struct {
	PostID      uint
	Content     string
	AuthorName  string
	AuthorEmail string
	ClientIP    string
	UserAgent   string
}

type ModerationListRequest struct {
	Page     int
	PageSize int
	Status   string
	PostID   *uint
}

// PublicCommentResponse 公开评论列表的输出，不包含邮箱、IP 与 UA。
type PublicCommentResponse struct {
	ID         uint      `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Content    string    `json:"content"`
	AuthorName string    `json:"author_name"`
	PostID     uint      `json:"post_id"`
}

func ToPublicComment(c *model.Comment) PublicCommentResponse {
	return PublicCommentResponse{
		ID:         c.ID,
		CreatedAt:  c.CreatedAt,
		Content:    c.Content,
		AuthorName: c.AuthorName,
		PostID:     c.PostID,
	}
}

func ToPublicComments(comments []model.Comment) []PublicCommentResponse {
	out := make([]PublicCommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, ToPublicComment(&comments[i]))
	}
	return out
}
