package service

import (
	"strings"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/db"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/access"
	"os-blog-server/internal/platform/notify"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

func (s *Service) resolveSlug(title string, excludeID *uint) (string, error) {
	base := utils.SlugifyOr(title, consts.SlugFallbackPost)
	return utils.EnsureUnique(base, func(candidate string) (bool, error) {
		return s.postStore.SlugExists(candidate, excludeID)
	})
}

// checkReferences 在写入前校验分类与标签存在，任何一个不存在都返回字段错误。
func (s *Service) checkReferences(fields platformservice.FieldErrors, categoryID *uint, tagIDs []uint) error {
	if categoryID != nil {
		ok, err := s.categories.Exists(*categoryID)
		if err != nil {
			logger.Errorf("❌ 校验分类失败: %v", err)
			return platformservice.NewInternalError("校验分类失败")
		}
		fields.Check("category_id", ok, "分类不存在")
	}
	if len(tagIDs) > 0 {
		missing, err := s.tags.MissingIDs(tagIDs)
		if err != nil {
			logger.Errorf("❌ 校验标签失败: %v", err)
			return platformservice.NewInternalError("校验标签失败")
		}
		fields.Check("tag_ids", len(missing) == 0, "标签不存在")
	}
	return nil
}

func (s *Service) getPost(id uint) (*model.Post, error) {
	post, err := s.postStore.FindByID(id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("文章不存在")
		}
		return nil, platformservice.NewInternalError("获取文章失败")
	}
	return post, nil
}

// getManaged 读取文章并要求调用者是作者或管理员。
func (s *Service) getManaged(actor *access.Principal, id uint) (*model.Post, error) {
	post, err := s.getPost(id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(post.AuthorID) {
		return nil, platformservice.NewForbiddenError("无权操作该文章")
	}
	return post, nil
}

// notifyRegen 变更涉及已发布内容时通知静态站点重建。
func (s *Service) notifyRegen(eventType string, post *model.Post) {
	if s.notifier == nil || post == nil {
		return
	}
	s.notifier.Enqueue(notify.Event{Type: eventType, PostID: post.ID, Slug: post.Slug})
}

func validatePostFields(fields platformservice.FieldErrors, title, content *string) {
	if title != nil {
		ok, msg := utils.ValidateLength(*title, "标题", 1, 255)
		fields.Check("title", ok, msg)
	}
	if content != nil {
		fields.Check("content", strings.TrimSpace(*content) != "", "内容不能为空")
	}
}

func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

func dedupeIDs(ids []uint) []uint {
	if ids == nil {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func translateWriteError(err error, fallback string) error {
	if _, ok := platformservice.AsServiceError(err); ok {
		return err
	}
	if db.IsDuplicatedKey(err) {
		return platformservice.NewConflictError("文章 slug 已存在，请稍后重试")
	}
	if db.IsNotFound(err) {
		return platformservice.NewNotFoundError("文章不存在")
	}
	logger.Errorf("❌ %s: %v", fallback, err)
	return platformservice.NewInternalError(fallback)
}
