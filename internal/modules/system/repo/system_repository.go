package repo

import (
	"errors"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"

	"gorm.io/gorm"
)

// ErrAlreadyInitialized allow_init 已被其他请求消费。
var ErrAlreadyInitialized = errors.New("system already initialized")

// ContentCounts 后台仪表盘统计。
type ContentCounts struct {
	Users           int64
	Posts           int64
	PublishedPosts  int64
	Categories      int64
	Tags            int64
	PendingComments int64
	Files           int64
	FileBytes       int64
}

type SystemStore interface {
	InitializeSystem(admin *model.User, blog *model.BlogSettings) error
	CountContent() (*ContentCounts, error)
}

type SystemRepository struct {
	db *gorm.DB
}

func NewSystemRepository(db *gorm.DB) SystemStore {
	return &SystemRepository{db: db}
}

// InitializeSystem 在同一事务中消费 allow_init、创建管理员和博客设置。
// allow_init 通过条件更新抢占，并发的第二个请求会因影响行数为 0 而整体回滚。
func (r *SystemRepository) InitializeSystem(admin *model.User, blog *model.BlogSettings) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Setting{}).
			Where(map[string]interface{}{"key": consts.ConfigAllowInit, "value": "true"}).
			Update("value", "false")
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyInitialized
		}

		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		blog.ID = model.BlogSettingsID
		return tx.Save(blog).Error
	})
}

func (r *SystemRepository) CountContent() (*ContentCounts, error) {
	var counts ContentCounts
	steps := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{r.db.Model(&model.User{}), &counts.Users},
		{r.db.Model(&model.Post{}), &counts.Posts},
		{r.db.Model(&model.Post{}).Where("published = ?", true), &counts.PublishedPosts},
		{r.db.Model(&model.Category{}), &counts.Categories},
		{r.db.Model(&model.Tag{}), &counts.Tags},
		{r.db.Model(&model.Comment{}).Where("approved = ? AND spam = ?", false, false), &counts.PendingComments},
		{r.db.Model(&model.File{}), &counts.Files},
	}
	for _, step := range steps {
		if err := step.query.Count(step.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := r.db.Model(&model.File{}).Select("COALESCE(SUM(size), 0)").Scan(&counts.FileBytes).Error; err != nil {
		return nil, err
	}
	return &counts, nil
}
