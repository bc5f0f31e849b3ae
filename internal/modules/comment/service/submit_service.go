package service

import (
	"strings"
	"time"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/db"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	moduledto "os-blog-server/internal/modules/comment/dto"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

// 频率限制命中时返回的原因。
const (
	ReasonIPLimit    = "ip_limit"
	ReasonEmailLimit = "email_limit"
)

const (
	maxCommentLength    = 5000
	maxAuthorNameLength = 100
	maxUserAgentLength  = 512
)

// Submit 提交一条待审核评论。
//
// 先做输入校验（不触碰存储），然后依次检查：文章存在且已发布、评论功能开启、
// 窗口期内同一 IP 与同一邮箱的评论数量。全部通过后以未审核状态写入。
func (s *Service) Submit(input moduledto.SubmitInput) (*model.Comment, error) {
	content := strings.TrimSpace(input.Content)
	name := strings.TrimSpace(input.AuthorName)
	email := utils.NormalizeEmail(input.AuthorEmail)

	fields := platformservice.FieldErrors{}
	ok, msg := utils.ValidateLength(content, "评论内容", 1, maxCommentLength)
	fields.Check("content", ok, msg)
	ok, msg = utils.ValidateLength(name, "昵称", 1, maxAuthorNameLength)
	fields.Check("author_name", ok, msg)
	ok, msg = utils.ValidateEmail(email)
	fields.Check("author_email", ok, msg)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	if err := s.requirePublishedPost(input.PostID, "提交评论失败"); err != nil {
		return nil, err
	}

	if !s.GetBool(consts.ConfigCommentsEnabled) {
		return nil, platformservice.NewForbiddenError("评论功能已关闭")
	}

	if err := s.checkRate(input.ClientIP, email); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Content:     content,
		AuthorName:  name,
		AuthorEmail: email,
		AuthorIP:    input.ClientIP,
		UserAgent:   truncatedUserAgent(input.UserAgent),
		Approved:    false,
		Spam:        false,
		PostID:      input.PostID,
	}
	if err := s.commentStore.Create(comment); err != nil {
		logger.Errorf("❌ 保存评论失败: %v", err)
		return nil, platformservice.NewInternalError("提交评论失败")
	}
	return comment, nil
}

// checkRate 统计窗口期内同一 IP、同一邮箱已提交的评论数。
func (s *Service) checkRate(ip, email string) error {
	window := s.GetInt(consts.ConfigCommentRateWindowMinutes)
	if window <= 0 {
		window = 15
	}
	since := s.now().Add(-time.Duration(window) * time.Minute)

	if limit := s.GetInt64(consts.ConfigCommentRateLimitIP); limit > 0 {
		count, err := s.commentStore.CountByIPSince(ip, since)
		if err != nil {
			return platformservice.NewInternalError("提交评论失败")
		}
		if count >= limit {
			return platformservice.NewRateLimitedError("评论过于频繁，请稍后再试", ReasonIPLimit)
		}
	}

	if limit := s.GetInt64(consts.ConfigCommentRateLimitEmail); limit > 0 {
		count, err := s.commentStore.CountByEmailSince(email, since)
		if err != nil {
			return platformservice.NewInternalError("提交评论失败")
		}
		if count >= limit {
			return platformservice.NewRateLimitedError("该邮箱评论过于频繁，请稍后再试", ReasonEmailLimit)
		}
	}
	return nil
}

func truncatedUserAgent(ua string) *string {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return nil
	}
	if len(ua) > maxUserAgentLength {
		ua = ua[:maxUserAgentLength]
	}
	return &ua
}

// requirePublishedPost 文章不存在或未发布时统一返回 NotFound，不区分两种情况。
func (s *Service) requirePublishedPost(postID uint, fallback string) error {
	post, err := s.commentStore.FindPost(postID)
	if err != nil {
		if db.IsNotFound(err) {
			return platformservice.NewNotFoundError("文章不存在")
		}
		return platformservice.NewInternalError(fallback)
	}
	if !post.Published {
		return platformservice.NewNotFoundError("文章不存在")
	}
	return nil
}
