package service

import (
	"time"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/db"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	moduledto "os-blog-server/internal/modules/comment/dto"
	"os-blog-server/internal/modules/comment/repo"
	platformservice "os-blog-server/internal/platform/service"
)

// ListApproved 公开评论列表：已审核且不是垃圾评论。文章撤回为草稿后评论一并隐藏。
func (s *Service) ListApproved(postID uint, page, pageSize int) ([]model.Comment, int64, error) {
	if err := s.requirePublishedPost(postID, "获取评论失败"); err != nil {
		return nil, 0, err
	}
	comments, total, err := s.commentStore.ListApproved(postID, page, pageSize)
	if err != nil {
		return nil, 0, platformservice.NewInternalError("获取评论失败")
	}
	return comments, total, nil
}

// ListForModeration 审核队列。status 缺省为 pending。
func (s *Service) ListForModeration(req moduledto.ModerationListRequest) ([]model.Comment, int64, error) {
	status := req.Status
	if status == "" {
		status = repo.StatusPending
	}
	switch status {
	case repo.StatusPending, repo.StatusApproved, repo.StatusSpam, repo.StatusAll:
	default:
		return nil, 0, platformservice.NewFieldValidationError("无效的状态", map[string]string{"status": "只能是 pending、approved、spam 或 all"})
	}

	comments, total, err := s.commentStore.ListForModeration(repo.ModerationFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Status:   status,
		PostID:   req.PostID,
	})
	if err != nil {
		return nil, 0, platformservice.NewInternalError("获取评论失败")
	}
	return comments, total, nil
}

// Approve 通过审核，同时清除垃圾标记。
func (s *Service) Approve(id uint) (*model.Comment, error) {
	return s.setStatus(id, true, false)
}

// MarkSpam 标记为垃圾评论，同时撤销审核。
func (s *Service) MarkSpam(id uint) (*model.Comment, error) {
	return s.setStatus(id, false, true)
}

func (s *Service) setStatus(id uint, approved, spam bool) (*model.Comment, error) {
	comment, err := s.getComment(id)
	if err != nil {
		return nil, err
	}
	if err := s.commentStore.UpdateStatus(id, approved, spam); err != nil {
		logger.Errorf("❌ 更新评论 %d 状态失败: %v", id, err)
		return nil, platformservice.NewInternalError("更新评论失败")
	}
	comment.Approved = approved
	comment.Spam = spam
	return comment, nil
}

func (s *Service) Delete(id uint) error {
	if err := s.commentStore.DeleteByID(id); err != nil {
		if db.IsNotFound(err) {
			return platformservice.NewNotFoundError("评论不存在")
		}
		return platformservice.NewInternalError("删除评论失败")
	}
	return nil
}

// PurgeSpam 删除超过保留天数的垃圾评论，保留天数为 0 时不清理。
func (s *Service) PurgeSpam() (int64, error) {
	days := s.GetInt(consts.ConfigSpamRetentionDays)
	if days <= 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	return s.commentStore.DeleteSpamBefore(cutoff)
}

func (s *Service) getComment(id uint) (*model.Comment, error) {
	comment, err := s.commentStore.FindByID(id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("评论不存在")
		}
		return nil, platformservice.NewInternalError("获取评论失败")
	}
	return comment, nil
}
