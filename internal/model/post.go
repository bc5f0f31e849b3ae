package model

import "time"

type Post struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Title           string     `json:"title" gorm:"size:255;not null"`
	Slug            string     `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Content         string     `json:"content" gorm:"type:text;not null"`
	Excerpt         *string    `json:"excerpt" gorm:"type:text"`
	FeaturedImage   *string    `json:"featured_image"`
	Published       bool       `json:"published" gorm:"not null;index"`
	PublishedAt     *time.Time `json:"published_at" gorm:"index"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	MetaKeywords    *string    `json:"meta_keywords"`
	AuthorID        uint       `json:"author_id" gorm:"not null;index"`
	Author          *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CategoryID      *uint      `json:"category_id" gorm:"index"`
	Category        *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags            []Tag      `json:"tags" gorm:"many2many:post_tags;"`
}

// PostTag 文章与标签的关联表，复合主键保证同一对关系只存在一条。
type PostTag struct {
	PostID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey;index"`
}
