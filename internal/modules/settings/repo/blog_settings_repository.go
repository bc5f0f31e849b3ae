package repo

import (
	"os-blog-server/internal/model"

	"gorm.io/gorm"
)

// BlogSettingsStore 读写博客设置单行记录，该行由初始化流程创建。
type BlogSettingsStore interface {
	Find() (*model.BlogSettings, error)
	Update(updates map[string]interface{}) (*model.BlogSettings, error)
}

type BlogSettingsRepository struct {
	db *gorm.DB
}

func NewBlogSettingsRepository(db *gorm.DB) BlogSettingsStore {
	return &BlogSettingsRepository{db: db}
}

func (r *BlogSettingsRepository) Find() (*model.BlogSettings, error) {
	var settings model.BlogSettings
	if err := r.db.First(&settings, model.BlogSettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *BlogSettingsRepository) Update(updates map[string]interface{}) (*model.BlogSettings, error) {
	var settings model.BlogSettings
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&settings, model.BlogSettingsID).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&settings).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&settings, model.BlogSettingsID).Error
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
