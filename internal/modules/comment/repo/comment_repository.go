package repo

import (
	"time"

	"os-blog-server/internal/model"

	"gorm.io/gorm"
)

// 审核队列过滤条件。
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusSpam     = "spam"
	StatusAll      = "all"
)

type ModerationFilter struct {
	Page     int
	PageSize int
	Status   string
	PostID   *uint
}

type CommentStore interface {
	FindPost(postID uint) (*model.Post, error)
	CountByIPSince(ip string, since time.Time) (int64, error)
	CountByEmailSince(email string, since time.Time) (int64, error)
	Create(comment *model.Comment) error
	ListApproved(postID uint, page, pageSize int) ([]model.Comment, int64, error)
	ListForModeration(filter ModerationFilter) ([]model.Comment, int64, error)
	FindByID(id uint) (*model.Comment, error)
	UpdateStatus(id uint, approved, spam bool) error
	DeleteByID(id uint) error
	DeleteSpamBefore(cutoff time.Time) (int64, error)
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}

// FindPost 只读取评论校验需要的列。
func (r *CommentRepository) FindPost(postID uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Select("id", "published", "author_id").First(&post, postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *CommentRepository) countSince(column, value string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).
		Where(column+" = ? AND created_at >= ?", value, since).
		Count(&count).Error
	return count, err
}

func (r *CommentRepository) CountByIPSince(ip string, since time.Time) (int64, error) {
	return r.countSince("author_ip", ip, since)
}

func (r *CommentRepository) CountByEmailSince(email string, since time.Time) (int64, error) {
	return r.countSince("author_email", email, since)
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) ListApproved(postID uint, page, pageSize int) ([]model.Comment, int64, error) {
	query := r.db.Model(&model.Comment{}).Where("post_id = ? AND approved = ? AND spam = ?", postID, true, false)
	return paginate(query.Order("created_at ASC").Order("id ASC"), page, pageSize)
}

func (r *CommentRepository) ListForModeration(filter ModerationFilter) ([]model.Comment, int64, error) {
	query := r.db.Model(&model.Comment{})
	switch filter.Status {
	case StatusPending:
		query = query.Where("approved = ? AND spam = ?", false, false)
	case StatusApproved:
		query = query.Where("approved = ?", true)
	case StatusSpam:
		query = query.Where("spam = ?", true)
	}
	if filter.PostID != nil {
		query = query.Where("post_id = ?", *filter.PostID)
	}
	return paginate(query.Order("created_at DESC").Order("id DESC"), filter.Page, filter.PageSize)
}

func paginate(query *gorm.DB, page, pageSize int) ([]model.Comment, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var comments []model.Comment
	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) UpdateStatus(id uint, approved, spam bool) error {
	return r.db.Model(&model.Comment{}).Where("id = ?", id).
		Updates(map[string]interface{}{"approved": approved, "spam": spam}).Error
}

func (r *CommentRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CommentRepository) DeleteSpamBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("spam = ? AND created_at < ?", true, cutoff).Delete(&model.Comment{})
	return result.RowsAffected, result.Error
}
