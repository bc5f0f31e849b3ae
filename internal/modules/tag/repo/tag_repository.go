package repo

import (
	"os-blog-server/internal/model"

	"gorm.io/gorm"
)

// TagWithCount 带已发布文章数的标签。
type TagWithCount struct {
	model.Tag
	PostCount int64 `json:"post_count"`
}

type TagStore interface {
	List() ([]TagWithCount, error)
	FindByID(id uint) (*model.Tag, error)
	FindBySlug(slug string) (*TagWithCount, error)
	FindByIDs(ids []uint) ([]model.Tag, error)
	NameExists(name string, excludeID *uint) (bool, error)
	SlugExists(slug string, excludeID *uint) (bool, error)
	Create(tag *model.Tag) error
	UpdateByID(id uint, updates map[string]interface{}) error
	CountPosts(id uint) (int64, error)
	DeleteByID(id uint) error
}

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagStore {
	return &TagRepository{db: db}
}

const publishedPostCountColumn = "(SELECT COUNT(*) FROM post_tags JOIN posts ON posts.id = post_tags.post_id WHERE post_tags.tag_id = tags.id AND posts.published = ?) AS post_count"

func (r *TagRepository) withCount() *gorm.DB {
	return r.db.Model(&model.Tag{}).Select("tags.*, "+publishedPostCountColumn, true)
}

func (r *TagRepository) List() ([]TagWithCount, error) {
	var rows []TagWithCount
	err := r.withCount().Order("tags.name ASC").Scan(&rows).Error
	return rows, err
}

func (r *TagRepository) FindByID(id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) FindBySlug(slug string) (*TagWithCount, error) {
	var rows []TagWithCount
	if err := r.withCount().Where("tags.slug = ?", slug).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *TagRepository) FindByIDs(ids []uint) ([]model.Tag, error) {
	var tags []model.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *TagRepository) exists(column, value string, excludeID *uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.Tag{}).Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TagRepository) NameExists(name string, excludeID *uint) (bool, error) {
	return r.exists("name", name, excludeID)
}

func (r *TagRepository) SlugExists(slug string, excludeID *uint) (bool, error) {
	return r.exists("slug", slug, excludeID)
}

func (r *TagRepository) Create(tag *model.Tag) error {
	return r.db.Create(tag).Error
}

func (r *TagRepository) UpdateByID(id uint, updates map[string]interface{}) error {
	result := r.db.Model(&model.Tag{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountPosts 统计引用该标签的全部文章（含草稿）。
func (r *TagRepository) CountPosts(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.PostTag{}).Where("tag_id = ?", id).Count(&count).Error
	return count, err
}

func (r *TagRepository) DeleteByID(id uint) error {
	return r.db.Delete(&model.Tag{}, id).Error
}
