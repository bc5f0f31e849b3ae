package service

import (
	"strings"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/db"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	moduledto "os-blog-server/internal/modules/tag/dto"
	"os-blog-server/internal/modules/tag/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

func (s *Service) List() ([]repo.TagWithCount, error) {
	tags, err := s.tagStore.List()
	if err != nil {
		return nil, platformservice.NewInternalError("获取标签列表失败")
	}
	return tags, nil
}

func (s *Service) GetBySlug(slug string) (*repo.TagWithCount, error) {
	tag, err := s.tagStore.FindBySlug(slug)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("标签不存在")
		}
		return nil, platformservice.NewInternalError("获取标签失败")
	}
	return tag, nil
}

// MissingIDs 返回 ids 中不存在的标签 ID，供文章模块在写入前校验。
func (s *Service) MissingIDs(ids []uint) ([]uint, error) {
	tags, err := s.tagStore.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	found := make(map[uint]struct{}, len(tags))
	for _, tag := range tags {
		found[tag.ID] = struct{}{}
	}
	var missing []uint
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (s *Service) Create(req moduledto.TagRequest) (*model.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(name, nil); err != nil {
		return nil, err
	}

	tag := &model.Tag{Name: name}
	err := platformservice.RetryOnDuplicateKey("标签", func(int) error {
		slug, err := s.resolveSlug(name, nil)
		if err != nil {
			return err
		}
		tag.Slug = slug
		return s.tagStore.Create(tag)
	})
	if err != nil {
		return nil, translateWriteError(err, "创建标签失败")
	}
	return tag, nil
}

// Update 重命名标签，名称不变时保留原 slug。
func (s *Service) Update(id uint, req moduledto.TagRequest) (*model.Tag, error) {
	tag, err := s.getTag(id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if name == tag.Name {
		return tag, nil
	}
	if err := s.ensureNameFree(name, &id); err != nil {
		return nil, err
	}

	err = platformservice.RetryOnDuplicateKey("标签", func(int) error {
		slug, err := s.resolveSlug(name, &id)
		if err != nil {
			return err
		}
		return s.tagStore.UpdateByID(id, map[string]interface{}{"name": name, "slug": slug})
	})
	if err != nil {
		return nil, translateWriteError(err, "更新标签失败")
	}
	return s.getTag(id)
}

// Delete 删除标签。仍被文章引用时返回冲突。
func (s *Service) Delete(id uint) error {
	if _, err := s.getTag(id); err != nil {
		return err
	}
	count, err := s.tagStore.CountPosts(id)
	if err != nil {
		return platformservice.NewInternalError("删除标签失败")
	}
	if count > 0 {
		return platformservice.NewConflictError("该标签仍被文章使用，无法删除")
	}
	if err := s.tagStore.DeleteByID(id); err != nil {
		logger.Errorf("❌ 删除标签 %d 失败: %v", id, err)
		return platformservice.NewInternalError("删除标签失败")
	}
	return nil
}

func (s *Service) getTag(id uint) (*model.Tag, error) {
	tag, err := s.tagStore.FindByID(id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("标签不存在")
		}
		return nil, platformservice.NewInternalError("获取标签失败")
	}
	return tag, nil
}

func (s *Service) ensureNameFree(name string, excludeID *uint) error {
	taken, err := s.tagStore.NameExists(name, excludeID)
	if err != nil {
		return platformservice.NewInternalError("检查标签名称失败")
	}
	if taken {
		return platformservice.NewConflictError("标签名称已存在")
	}
	return nil
}

func (s *Service) resolveSlug(name string, excludeID *uint) (string, error) {
	base := utils.SlugifyOr(name, consts.SlugFallbackTag)
	return utils.EnsureUnique(base, func(candidate string) (bool, error) {
		return s.tagStore.SlugExists(candidate, excludeID)
	})
}

func validateName(name string) error {
	if ok, msg := utils.ValidateLength(name, "标签名称", 1, 64); !ok {
		return platformservice.NewFieldValidationError(msg, map[string]string{"name": msg})
	}
	return nil
}

func translateWriteError(err error, fallback string) error {
	if _, ok := platformservice.AsServiceError(err); ok {
		return err
	}
	if db.IsDuplicatedKey(err) {
		return platformservice.NewConflictError("标签名称或 slug 已存在")
	}
	if db.IsNotFound(err) {
		return platformservice.NewNotFoundError("标签不存在")
	}
	logger.Errorf("❌ %s: %v", fallback, err)
	return platformservice.NewInternalError(fallback)
}
