package dto

import (
	"time"

	"os-blog-server/internal/model"
)

// PublicAuthor 公开接口中的作者资料，只包含可以对外展示的字段。
type PublicAuthor struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ProfilePicture string `json:"profile_picture"`
}

type PublicPostResponse struct {
	ID              uint            `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Content         string          `json:"content"`
	Excerpt         *string         `json:"excerpt"`
	FeaturedImage   *string         `json:"featured_image"`
	Published       bool            `json:"published"`
	PublishedAt     *time.Time      `json:"published_at"`
	MetaTitle       *string         `json:"meta_title"`
	MetaDescription *string         `json:"meta_description"`
	MetaKeywords    *string         `json:"meta_keywords"`
	AuthorID        uint            `json:"author_id"`
	Author          *PublicAuthor   `json:"author,omitempty"`
	CategoryID      *uint           `json:"category_id"`
	Category        *model.Category `json:"category,omitempty"`
	Tags            []model.Tag     `json:"tags"`
}

func ToPublicAuthor(u *model.User) *PublicAuthor {
	if u == nil {
		return nil
	}
	return &PublicAuthor{
		ID:             u.ID,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
	}
}

func ToPublicPost(p *model.Post) PublicPostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []model.Tag{}
	}
	return PublicPostResponse{
		ID:              p.ID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		FeaturedImage:   p.FeaturedImage,
		Published:       p.Published,
		PublishedAt:     p.PublishedAt,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
		AuthorID:        p.AuthorID,
		Author:          ToPublicAuthor(p.Author),
		CategoryID:      p.CategoryID,
		Category:        p.Category,
		Tags:            tags,
	}
}

func ToPublicPosts(posts []model.Post) []PublicPostResponse {
	out := make([]PublicPostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, ToPublicPost(&posts[i]))
	}
	return out
}
