package service

import (
	"strings"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/db"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/access"
	moduledto "os-blog-server/internal/modules/category/dto"
	"os-blog-server/internal/modules/category/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

func (s *Service) List() ([]repo.CategoryWithCount, error) {
	categories, err := s.categoryStore.List()
	if err != nil {
		return nil, platformservice.NewInternalError("获取分类列表失败")
	}
	return categories, nil
}

func (s *Service) GetBySlug(slug string) (*repo.CategoryWithCount, error) {
	category, err := s.categoryStore.FindBySlug(slug)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("分类不存在")
		}
		return nil, platformservice.NewInternalError("获取分类失败")
	}
	return category, nil
}

// Exists 供文章模块在写入前校验分类 ID。
func (s *Service) Exists(id uint) (bool, error) {
	if _, err := s.categoryStore.FindByID(id); err != nil {
		if db.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) Create(actor *access.Principal, req moduledto.CreateCategoryRequest) (*model.Category, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateCategory(&name, req.Color); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(name, nil); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        name,
		Description: trimmedPtr(req.Description),
		Color:       trimmedPtr(req.Color),
		CreatedBy:   actor.UserID,
	}
	err := platformservice.RetryOnDuplicateKey("分类", func(int) error {
		slug, err := s.resolveSlug(name, nil)
		if err != nil {
			return err
		}
		category.Slug = slug
		return s.categoryStore.Create(category)
	})
	if err != nil {
		return nil, translateWriteError(err, "创建分类失败")
	}
	return category, nil
}

// Update 修改分类，仅创建者或管理员可操作。名称变化时重新生成 slug。
func (s *Service) Update(actor *access.Principal, id uint, req moduledto.UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.getOwned(actor, id)
	if err != nil {
		return nil, err
	}

	name := trimmedPtr(req.Name)
	if err := validateCategory(name, req.Color); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	nameChanged := name != nil && *name != category.Name
	if nameChanged {
		if err := s.ensureNameFree(*name, &id); err != nil {
			return nil, err
		}
		updates["name"] = *name
	}
	if req.Description != nil {
		updates["description"] = trimmedPtr(req.Description)
	}
	if req.Color != nil {
		updates["color"] = trimmedPtr(req.Color)
	}
	if len(updates) == 0 {
		return category, nil
	}

	err = platformservice.RetryOnDuplicateKey("分类", func(int) error {
		if nameChanged {
			slug, err := s.resolveSlug(*name, &id)
			if err != nil {
				return err
			}
			updates["slug"] = slug
		}
		return s.categoryStore.UpdateByID(id, updates)
	})
	if err != nil {
		return nil, translateWriteError(err, "更新分类失败")
	}
	return s.categoryStore.FindByID(id)
}

// Delete 删除分类。仍被文章引用时返回冲突。
func (s *Service) Delete(actor *access.Principal, id uint) error {
	if _, err := s.getOwned(actor, id); err != nil {
		return err
	}
	count, err := s.categoryStore.CountPosts(id)
	if err != nil {
		return platformservice.NewInternalError("删除分类失败")
	}
	if count > 0 {
		return platformservice.NewConflictError("该分类下仍有文章，无法删除")
	}
	if err := s.categoryStore.DeleteByID(id); err != nil {
		logger.Errorf("❌ 删除分类 %d 失败: %v", id, err)
		return platformservice.NewInternalError("删除分类失败")
	}
	return nil
}

func (s *Service) getOwned(actor *access.Principal, id uint) (*model.Category, error) {
	category, err := s.categoryStore.FindByID(id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("分类不存在")
		}
		return nil, platformservice.NewInternalError("获取分类失败")
	}
	if !actor.CanManage(category.CreatedBy) {
		return nil, platformservice.NewForbiddenError("无权操作该分类")
	}
	return category, nil
}

func (s *Service) ensureNameFree(name string, excludeID *uint) error {
	taken, err := s.categoryStore.NameExists(name, excludeID)
	if err != nil {
		return platformservice.NewInternalError("检查分类名称失败")
	}
	if taken {
		return platformservice.NewConflictError("分类名称已存在")
	}
	return nil
}

func (s *Service) resolveSlug(name string, excludeID *uint) (string, error) {
	base := utils.SlugifyOr(name, consts.SlugFallbackCategory)
	return utils.EnsureUnique(base, func(candidate string) (bool, error) {
		return s.categoryStore.SlugExists(candidate, excludeID)
	})
}

func validateCategory(name, color *string) error {
	fields := platformservice.FieldErrors{}
	if name != nil {
		ok, msg := utils.ValidateLength(*name, "分类名称", 1, 100)
		fields.Check("name", ok, msg)
	}
	if color != nil && strings.TrimSpace(*color) != "" {
		ok, msg := utils.ValidateHexColor(strings.TrimSpace(*color))
		fields.Check("color", ok, msg)
	}
	return fields.Err()
}

func trimmedPtr(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

func translateWriteError(err error, fallback string) error {
	if _, ok := platformservice.AsServiceError(err); ok {
		return err
	}
	if db.IsDuplicatedKey(err) {
		return platformservice.NewConflictError("分类名称或 slug 已存在")
	}
	if db.IsNotFound(err) {
		return platformservice.NewNotFoundError("分类不存在")
	}
	logger.Errorf("❌ %s: %v", fallback, err)
	return platformservice.NewInternalError(fallback)
}
