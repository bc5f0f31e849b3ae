package repo

import (
	"fmt"

	"os-blog-server/internal/model"

	"gorm.io/gorm"
)

type UpdateSettingItem struct {
	Key   string
	Value string
}

type SettingStore interface {
	InitializeDefaults(defaults []model.Setting) error
	DeleteNotInKeys(allowedKeys []string) error
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
	FindAll() ([]model.Setting, error)
	UpdateSettings(items []UpdateSettingItem, maskedValue string) error
}

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}

// key 列在 MySQL 中是保留字，条件统一写成 map 交给 gorm 加引号。

// InitializeDefaults 缺失的配置按默认值创建；已存在的只同步描述、分类和敏感标记，不覆盖值。
func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range defaults {
			meta := map[string]interface{}{
				"category":  def.Category,
				"desc":      def.Desc,
				"sensitive": def.Sensitive,
			}
			result := tx.Model(&model.Setting{}).Where(map[string]interface{}{"key": def.Key}).Updates(meta)
			if result.Error != nil {
				return fmt.Errorf("update default setting metadata %q failed: %w", def.Key, result.Error)
			}
			if result.RowsAffected > 0 {
				continue
			}

			var count int64
			if err := tx.Model(&model.Setting{}).Where(map[string]interface{}{"key": def.Key}).Count(&count).Error; err != nil {
				return fmt.Errorf("count default setting %q failed: %w", def.Key, err)
			}
			if count > 0 {
				continue
			}
			row := def
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("create default setting %q failed: %w", def.Key, err)
			}
		}
		return nil
	})
}

func (r *SettingRepository) DeleteNotInKeys(allowedKeys []string) error {
	query := r.db.Model(&model.Setting{})
	if len(allowedKeys) == 0 {
		return query.Where("1 = 1").Delete(&model.Setting{}).Error
	}
	return query.Not(map[string]interface{}{"key": allowedKeys}).Delete(&model.Setting{}).Error
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where(map[string]interface{}{"key": key}).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings 批量写入配置。敏感配置提交掩码值时视为未修改。
func (r *SettingRepository) UpdateSettings(items []UpdateSettingItem, maskedValue string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if item.Value == maskedValue && isSensitive(tx, item.Key) {
				continue
			}

			var count int64
			if err := tx.Model(&model.Setting{}).Where(map[string]interface{}{"key": item.Key}).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				if err := tx.Create(&model.Setting{Key: item.Key, Value: item.Value}).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Model(&model.Setting{}).Where(map[string]interface{}{"key": item.Key}).Update("value", item.Value).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func isSensitive(tx *gorm.DB, key string) bool {
	var current model.Setting
	if err := tx.Where(map[string]interface{}{"key": key}).First(&current).Error; err != nil {
		return false
	}
	return current.Sensitive
}
