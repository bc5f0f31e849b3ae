package service

import (
	"bytes"
	"strings"

	"os-blog-server/internal/db"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	moduledto "os-blog-server/internal/modules/settings/dto"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

const (
	maxBlogTitleLength       = 255
	maxBlogDescriptionLength = 1000
	maxThemeLength           = 64
)

// PublicBlogSettings 返回前台展示用的博客资料。
func (s *Service) PublicBlogSettings() (*moduledto.PublicBlogSettingsResponse, error) {
	settings, err := s.getBlogSettings()
	if err != nil {
		return nil, err
	}
	return &moduledto.PublicBlogSettingsResponse{
		Title:       settings.Title,
		Description: settings.Description,
		Logo:        settings.Logo,
		Favicon:     settings.Favicon,
		Theme:       settings.Theme,
		SocialLinks: settings.SocialLinks,
		SEOSettings: settings.SEOSettings,
	}, nil
}

func (s *Service) AdminGetBlogSettings() (*model.BlogSettings, error) {
	return s.getBlogSettings()
}

// AdminUpdateBlogSettings 局部更新博客设置，JSON 字段必须是对象（null 视为清空）。
func (s *Service) AdminUpdateBlogSettings(req moduledto.UpdateBlogSettingsRequest) (*model.BlogSettings, error) {
	fields := platformservice.FieldErrors{}
	updates := map[string]interface{}{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		ok, msg := utils.ValidateLength(title, "博客标题", 1, maxBlogTitleLength)
		fields.Check("title", ok, msg)
		updates["title"] = title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		ok, msg := utils.ValidateLength(description, "博客简介", 0, maxBlogDescriptionLength)
		fields.Check("description", ok, msg)
		updates["description"] = description
	}
	if req.Logo != nil {
		updates["logo"] = strings.TrimSpace(*req.Logo)
	}
	if req.Favicon != nil {
		updates["favicon"] = strings.TrimSpace(*req.Favicon)
	}
	if req.Theme != nil {
		theme := strings.TrimSpace(*req.Theme)
		ok, msg := utils.ValidateLength(theme, "主题", 0, maxThemeLength)
		fields.Check("theme", ok, msg)
		updates["theme"] = theme
	}

	blobs := []struct {
		field string
		value *datatypes.JSON
	}{
		{"email_settings", req.EmailSettings},
		{"social_links", req.SocialLinks},
		{"seo_settings", req.SEOSettings},
	}
	for _, blob := range blobs {
		if blob.value == nil {
			continue
		}
		normalized, ok := normalizeJSONObject(*blob.value)
		fields.Check(blob.field, ok, "必须是 JSON 对象")
		updates[blob.field] = normalized
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}

	settings, err := s.blogStore.Update(updates)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("博客尚未初始化")
		}
		logger.Errorf("❌ 更新博客设置失败: %v", err)
		return nil, platformservice.NewInternalError("更新博客设置失败")
	}
	return settings, nil
}

func (s *Service) getBlogSettings() (*model.BlogSettings, error) {
	settings, err := s.blogStore.Find()
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("博客尚未初始化")
		}
		return nil, platformservice.NewInternalError("获取博客设置失败")
	}
	return settings, nil
}

// normalizeJSONObject 校验并压缩 JSON 对象，null 返回空值用于清空字段。
func normalizeJSONObject(raw datatypes.JSON) (datatypes.JSON, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, true
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(trimmed, &obj); err != nil || obj == nil {
		return nil, false
	}
	compact, err := json.Marshal(obj)
	if err != nil {
		return nil, false
	}
	return datatypes.JSON(compact), true
}
