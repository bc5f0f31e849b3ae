package repo

import (
	"strings"
	"time"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"

	"gorm.io/gorm"
)

type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
	Active   *bool
}

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindActiveByIdentifier(identifier string) ([]model.User, error)
	Create(user *model.User) error
	UpdateByID(userID uint, updates map[string]interface{}) error
	UpdateLastLogin(userID uint, at time.Time) error
	FieldExists(field consts.UserField, value string, excludeUserID *uint) (bool, error)
	List(filter UserListFilter) ([]model.User, int64, error)
	CountOwnedContent(userID uint) (posts int64, categories int64, err error)
	DeleteByID(userID uint) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindActiveByIdentifier 按用户名或邮箱（不区分大小写）查找启用中的用户。
func (r *UserRepository) FindActiveByIdentifier(identifier string) ([]model.User, error) {
	var users []model.User
	err := r.db.
		Where("(username = ? OR email = ?) AND active = ?", identifier, strings.ToLower(identifier), true).
		Limit(2).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) UpdateByID(userID uint, updates map[string]interface{}) error {
	result := r.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(userID uint, at time.Time) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).UpdateColumn("last_login_at", at).Error
}

// FieldExists 判断字段值是否已被其他用户占用，邮箱比较不区分大小写。
func (r *UserRepository) FieldExists(field consts.UserField, value string, excludeUserID *uint) (bool, error) {
	query := r.db.Model(&model.User{})
	if excludeUserID != nil {
		query = query.Where("id <> ?", *excludeUserID)
	}
	switch field {
	case consts.UserFieldEmail:
		query = query.Where("LOWER(email) = ?", strings.ToLower(value))
	default:
		query = query.Where(string(field)+" = ?", value)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) List(filter UserListFilter) ([]model.User, int64, error) {
	query := r.db.Model(&model.User{})
	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		like := "%" + kw + "%"
		query = query.Where("username LIKE ? OR email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like, like)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Order("id asc").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) CountOwnedContent(userID uint) (int64, int64, error) {
	var posts, categories int64
	if err := r.db.Model(&model.Post{}).Where("author_id = ?", userID).Count(&posts).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&model.Category{}).Where("created_by = ?", userID).Count(&categories).Error; err != nil {
		return 0, 0, err
	}
	return posts, categories, nil
}

func (r *UserRepository) DeleteByID(userID uint) error {
	result := r.db.Delete(&model.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
