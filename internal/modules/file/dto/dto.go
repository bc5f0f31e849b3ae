package dto

import "os-blog-server/internal/model"

// 上传分类
const (
	CategorySettings        = "settings"
	CategoryProfilePictures = "profile_pictures"
	CategoryBlogImages      = "blog_images"
)

type UploadResponse struct {
	File *model.File `json:"file"`
	URL  string      `json:"url"`
}

type ListFilesRequest struct {
	Page     int
	PageSize int
	Category string
}
