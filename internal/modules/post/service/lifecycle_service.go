package service

import (
	"strings"
	"time"

	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/access"
	moduledto "os-blog-server/internal/modules/post/dto"
	"os-blog-server/internal/platform/notify"
	platformservice "os-blog-server/internal/platform/service"
)

// nextPublishedAt 计算发布状态变化后的 published_at。
//
//   - 显式提供 override 时总是使用它；
//   - 草稿首次发布且此前没有发布时间时取 now；
//   - 其他情况保留原值，取消发布不会清空发布时间。
func nextPublishedAt(current *time.Time, wasPublished, nowPublished bool, override *time.Time, now time.Time) *time.Time {
	if override != nil {
		t := *override
		return &t
	}
	if nowPublished && !wasPublished && current == nil {
		t := now
		return &t
	}
	return current
}

func regenEventType(wasPublished, nowPublished bool) string {
	switch {
	case nowPublished && !wasPublished:
		return notify.EventPostPublished
	case wasPublished && !nowPublished:
		return notify.EventPostUnpublished
	default:
		return notify.EventPostUpdated
	}
}

// Create 创建文章。分类与标签全部存在才会写入，slug 由标题生成。
func (s *Service) Create(actor *access.Principal, req moduledto.CreatePostRequest) (*model.Post, error) {
	title := strings.TrimSpace(req.Title)
	tagIDs := dedupeIDs(req.TagIDs)

	fields := platformservice.FieldErrors{}
	validatePostFields(fields, &title, &req.Content)
	if err := s.checkReferences(fields, req.CategoryID, tagIDs); err != nil {
		return nil, err
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:           title,
		Content:         req.Content,
		Excerpt:         optionalText(req.Excerpt),
		FeaturedImage:   optionalText(req.FeaturedImage),
		Published:       req.Published,
		PublishedAt:     nextPublishedAt(nil, false, req.Published, req.PublishedAt, time.Now()),
		MetaTitle:       optionalText(req.MetaTitle),
		MetaDescription: optionalText(req.MetaDescription),
		MetaKeywords:    optionalText(req.MetaKeywords),
		AuthorID:        actor.UserID,
		CategoryID:      req.CategoryID,
	}

	err := platformservice.RetryOnDuplicateKey("文章", func(int) error {
		slug, err := s.resolveSlug(title, nil)
		if err != nil {
			return err
		}
		post.Slug = slug
		post.ID = 0
		return s.postStore.Create(post, tagIDs)
	})
	if err != nil {
		return nil, translateWriteError(err, "创建文章失败")
	}

	created, err := s.getPost(post.ID)
	if err != nil {
		return nil, err
	}
	if created.Published {
		s.notifyRegen(notify.EventPostPublished, created)
	}
	return created, nil
}

// Update 修改文章。仅作者或管理员可操作；引用校验在任何写入之前完成。
func (s *Service) Update(actor *access.Principal, id uint, req moduledto.UpdatePostRequest) (*model.Post, error) {
	post, err := s.getManaged(actor, id)
	if err != nil {
		return nil, err
	}

	title := optionalTrim(req.Title)
	var tagIDs *[]uint
	if req.TagIDs != nil {
		ids := dedupeIDs(*req.TagIDs)
		tagIDs = &ids
	}
	var newCategory *uint
	if req.CategoryID.Set && !req.ClearCategory {
		newCategory = req.CategoryID.Value
	}

	fields := platformservice.FieldErrors{}
	validatePostFields(fields, title, req.Content)
	var checkTags []uint
	if tagIDs != nil {
		checkTags = *tagIDs
	}
	if err := s.checkReferences(fields, newCategory, checkTags); err != nil {
		return nil, err
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	titleChanged := title != nil && *title != post.Title
	if titleChanged {
		updates["title"] = *title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	setText := func(column string, v *string) {
		if v != nil {
			updates[column] = optionalText(v)
		}
	}
	setText("excerpt", req.Excerpt)
	setText("featured_image", req.FeaturedImage)
	setText("meta_title", req.MetaTitle)
	setText("meta_description", req.MetaDescription)
	setText("meta_keywords", req.MetaKeywords)

	switch {
	case req.ClearCategory || (req.CategoryID.Set && req.CategoryID.Value == nil):
		updates["category_id"] = nil
	case newCategory != nil:
		updates["category_id"] = *newCategory
	}

	wasPublished := post.Published
	nowPublished := wasPublished
	if req.Published != nil {
		nowPublished = *req.Published
		updates["published"] = nowPublished
	}
	publishedAt := nextPublishedAt(post.PublishedAt, wasPublished, nowPublished, req.PublishedAt, time.Now())
	if publishedAt != post.PublishedAt {
		updates["published_at"] = publishedAt
	}

	err = platformservice.RetryOnDuplicateKey("文章", func(int) error {
		if titleChanged {
			slug, err := s.resolveSlug(*title, &id)
			if err != nil {
				return err
			}
			updates["slug"] = slug
		}
		return s.postStore.Update(id, updates, tagIDs)
	})
	if err != nil {
		return nil, translateWriteError(err, "更新文章失败")
	}

	updated, err := s.getPost(id)
	if err != nil {
		return nil, err
	}
	if wasPublished || nowPublished {
		s.notifyRegen(regenEventType(wasPublished, nowPublished), updated)
	}
	return updated, nil
}

// Delete 删除文章及其标签关联与评论。
func (s *Service) Delete(actor *access.Principal, id uint) error {
	post, err := s.getManaged(actor, id)
	if err != nil {
		return err
	}
	if err := s.postStore.Delete(id); err != nil {
		return translateWriteError(err, "删除文章失败")
	}
	logger.Infof("🗑️ 文章 %d(%s) 已被用户 %d 删除", post.ID, post.Slug, actor.UserID)
	if post.Published {
		s.notifyRegen(notify.EventPostDeleted, post)
	}
	return nil
}

func optionalTrim(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
