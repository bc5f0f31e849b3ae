package consts

const (
	FileCategorySettings        = "settings"
	FileCategoryProfilePictures = "profile_pictures"
	FileCategoryBlogImages      = "blog_images"
)

// ValidFileCategory 判断上传分类是否合法。
func ValidFileCategory(category string) bool {
	switch category {
	case FileCategorySettings, FileCategoryProfilePictures, FileCategoryBlogImages:
		return true
	}
	return false
}
