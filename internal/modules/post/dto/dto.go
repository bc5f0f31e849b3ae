package dto

import (
	"time"

	"github.com/goccy/go-json"
)

// NullableID 区分字段缺省与显式 null：缺省时 Set 为 false，null 时 Set 为 true 且 Value 为 nil。
type NullableID struct {
	Set   bool
	Value *uint
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type CreatePostRequest struct {
	Title           string     `json:"title" binding:"required"`
	Content         string     `json:"content" binding:"required"`
	Excerpt         *string    `json:"excerpt"`
	FeaturedImage   *string    `json:"featured_image"`
	Published       bool       `json:"published"`
	PublishedAt     *time.Time `json:"published_at"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	MetaKeywords    *string    `json:"meta_keywords"`
	CategoryID      *uint      `json:"category_id"`
	TagIDs          []uint     `json:"tag_ids"`
}

// UpdatePostRequest 所有字段可选。TagIDs 提供时整体替换标签；
// CategoryID 为 null 或 ClearCategory 为 true 时移除分类。
type UpdatePostRequest struct {
	Title           *string    `json:"title"`
	Content         *string    `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	FeaturedImage   *string    `json:"featured_image"`
	Published       *bool      `json:"published"`
	PublishedAt     *time.Time `json:"published_at"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	MetaKeywords    *string    `json:"meta_keywords"`
	CategoryID      NullableID `json:"category_id"`
	ClearCategory   bool       `json:"clear_category"`
	TagIDs          *[]uint    `json:"tag_ids"`
}

type PublishedListRequest struct {
	Page         int
	PageSize     int
	CategorySlug string
	TagSlug      string
	AuthorID     *uint
	Search       string
}

type AdminListRequest struct {
	Page      int
	PageSize  int
	Search    string
	Published *bool
}
