package repo

import (
	"os-blog-server/internal/model"

	"gorm.io/gorm"
)

// CategoryWithCount 带已发布文章数的分类。
type CategoryWithCount struct {
	model.Category
	PostCount int64 `json:"post_count"`
}

type CategoryStore interface {
	List() ([]CategoryWithCount, error)
	FindByID(id uint) (*model.Category, error)
	FindBySlug(slug string) (*CategoryWithCount, error)
	NameExists(name string, excludeID *uint) (bool, error)
	SlugExists(slug string, excludeID *uint) (bool, error)
	Create(category *model.Category) error
	UpdateByID(id uint, updates map[string]interface{}) error
	CountPosts(id uint) (int64, error)
	DeleteByID(id uint) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryStore {
	return &CategoryRepository{db: db}
}

const publishedPostCountColumn = "(SELECT COUNT(*) FROM posts WHERE posts.category_id = categories.id AND posts.published = ?) AS post_count"

func (r *CategoryRepository) withCount() *gorm.DB {
	return r.db.Model(&model.Category{}).Select("categories.*, "+publishedPostCountColumn, true)
}

func (r *CategoryRepository) List() ([]CategoryWithCount, error) {
	var rows []CategoryWithCount
	err := r.withCount().Order("categories.name ASC").Scan(&rows).Error
	return rows, err
}

func (r *CategoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindBySlug(slug string) (*CategoryWithCount, error) {
	var rows []CategoryWithCount
	if err := r.withCount().Where("categories.slug = ?", slug).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *CategoryRepository) exists(column, value string, excludeID *uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.Category{}).Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) NameExists(name string, excludeID *uint) (bool, error) {
	return r.exists("name", name, excludeID)
}

func (r *CategoryRepository) SlugExists(slug string, excludeID *uint) (bool, error) {
	return r.exists("slug", slug, excludeID)
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) UpdateByID(id uint, updates map[string]interface{}) error {
	result := r.db.Model(&model.Category{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// CountPosts 统计引用该分类的全部文章（含草稿）。
func (r *CategoryRepository) CountPosts(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}

func (r *CategoryRepository) DeleteByID(id uint) error {
	return r.db.Delete(&model.Category{}, id).Error
}
