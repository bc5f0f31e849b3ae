package model

import (
	"time"

	"gorm.io/datatypes"
)

// BlogSettingsID 博客设置为单行记录，固定主键。
const BlogSettingsID uint = 1

type BlogSettings struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Title         string         `json:"title" gorm:"size:255;not null"`
	Description   string         `json:"description"`
	Logo          string         `json:"logo"`
	Favicon       string         `json:"favicon"`
	Theme         string         `json:"theme" gorm:"size:64"`
	EmailSettings datatypes.JSON `json:"email_settings"`
	SocialLinks   datatypes.JSON `json:"social_links"`
	SEOSettings   datatypes.JSON `json:"seo_settings"`
}
