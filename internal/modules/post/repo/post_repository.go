package repo

import (
	"strings"
	"time"

	"os-blog-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostListFilter 文章列表查询条件。PublishedOnly 为 true 时只返回已发布文章。
type PostListFilter struct {
	Page          int
	PageSize      int
	CategorySlug  string
	TagSlug       string
	AuthorID      *uint
	Search        string
	PublishedOnly bool
	Published     *bool
}

type PostStore interface {
	List(filter PostListFilter) ([]model.Post, int64, error)
	FindByID(id uint) (*model.Post, error)
	FindBySlug(slug string) (*model.Post, error)
	SlugExists(slug string, excludeID *uint) (bool, error)
	Create(post *model.Post, tagIDs []uint) error
	Update(id uint, updates map[string]interface{}, tagIDs *[]uint) error
	Delete(id uint) error
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostStore {
	return &PostRepository{db: db}
}

func (r *PostRepository) withRelations(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Author").Preload("Category").Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("tags.name ASC")
	})
}

func (r *PostRepository) List(filter PostListFilter) ([]model.Post, int64, error) {
	query := r.db.Model(&model.Post{})

	if filter.PublishedOnly {
		query = query.Where("posts.published = ?", true)
	} else if filter.Published != nil {
		query = query.Where("posts.published = ?", *filter.Published)
	}
	if filter.AuthorID != nil {
		query = query.Where("posts.author_id = ?", *filter.AuthorID)
	}
	if filter.CategorySlug != "" {
		query = query.Where("posts.category_id IN (?)",
			r.db.Model(&model.Category{}).Select("id").Where("slug = ?", filter.CategorySlug))
	}
	if filter.TagSlug != "" {
		query = query.Where("posts.id IN (?)",
			r.db.Table("post_tags").Select("post_tags.post_id").
				Joins("JOIN tags ON tags.id = post_tags.tag_id").
				Where("tags.slug = ?", filter.TagSlug))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(posts.title) LIKE ? OR LOWER(COALESCE(posts.excerpt, '')) LIKE ? OR LOWER(posts.content) LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PublishedOnly {
		query = query.Order("posts.published_at DESC").Order("posts.id DESC")
	} else {
		query = query.Order("posts.created_at DESC").Order("posts.id DESC")
	}

	var posts []model.Post
	offset := (filter.Page - 1) * filter.PageSize
	if err := r.withRelations(query).Limit(filter.PageSize).Offset(offset).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.withRelations(r.db).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) FindBySlug(slug string) (*model.Post, error) {
	var post model.Post
	if err := r.withRelations(r.db).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) SlugExists(slug string, excludeID *uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.Post{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 在同一事务中写入文章与标签关联。
func (r *PostRepository) Create(post *model.Post, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		return insertPostTags(tx, post.ID, tagIDs)
	})
}

// Update 更新文章字段；tagIDs 非 nil 时整体替换标签关联。
func (r *PostRepository) Update(id uint, updates map[string]interface{}, tagIDs *[]uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		if len(updates) > 0 {
			updates["updated_at"] = time.Now()
			if err := tx.Model(&model.Post{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		if tagIDs != nil {
			if err := tx.Where("post_id = ?", id).Delete(&model.PostTag{}).Error; err != nil {
				return err
			}
			return insertPostTags(tx, id, *tagIDs)
		}
		return nil
	})
}

// Delete 删除文章及其标签关联和评论。
func (r *PostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func insertPostTags(tx *gorm.DB, postID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]model.PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, model.PostTag{PostID: postID, TagID: tagID})
	}
	return tx.Create(&links).Error
}
