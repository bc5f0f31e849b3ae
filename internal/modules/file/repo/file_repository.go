package repo

import (
	"os-blog-server/internal/model"

	"gorm.io/gorm"
)

type ListFilesParams struct {
	UploaderID *uint
	Category   string
	Offset     int
	Limit      int
}

type FileStore interface {
	Create(file *model.File) error
	FindByID(id uint) (*model.File, error)
	ListFiles(params ListFilesParams) ([]model.File, int64, error)
	DeleteByID(id uint) error
	FindByUploader(uploaderID uint) ([]model.File, error)
	DeleteByUploader(uploaderID uint) error
}

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileStore {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(file *model.File) error {
	return r.db.Create(file).Error
}

func (r *FileRepository) FindByID(id uint) (*model.File, error) {
	var file model.File
	if err := r.db.First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *FileRepository) ListFiles(params ListFilesParams) ([]model.File, int64, error) {
	var files []model.File
	var total int64

	query := r.db.Model(&model.File{})
	if params.UploaderID != nil {
		query = query.Where("uploader_id = ?", *params.UploaderID)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id desc").Offset(params.Offset).Limit(params.Limit).Find(&files).Error; err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

func (r *FileRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&model.File{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FileRepository) FindByUploader(uploaderID uint) ([]model.File, error) {
	var files []model.File
	if err := r.db.Where("uploader_id = ?", uploaderID).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepository) DeleteByUploader(uploaderID uint) error {
	return r.db.Where("uploader_id = ?", uploaderID).Delete(&model.File{}).Error
}
