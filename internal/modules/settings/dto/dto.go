package dto

import (
	"gorm.io/datatypes"
)

type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// UpdateBlogSettingsRequest 未提交的字段保持不变。
type UpdateBlogSettingsRequest struct {
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	Logo          *string         `json:"logo"`
	Favicon       *string         `json:"favicon"`
	Theme         *string         `json:"theme"`
	EmailSettings *datatypes.JSON `json:"email_settings"`
	SocialLinks   *datatypes.JSON `json:"social_links"`
	SEOSettings   *datatypes.JSON `json:"seo_settings"`
}

// PublicBlogSettingsResponse 前台可见的博客资料，不含邮件配置。
type PublicBlogSettingsResponse struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Logo        string         `json:"logo"`
	Favicon     string         `json:"favicon"`
	Theme       string         `json:"theme"`
	SocialLinks datatypes.JSON `json:"social_links"`
	SEOSettings datatypes.JSON `json:"seo_settings"`
}
