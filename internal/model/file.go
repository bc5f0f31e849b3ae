package model

import "time"

// File 上传到本地存储的文件记录。
type File struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	Category   string    `json:"category" gorm:"size:32;not null;index"`
	Filename   string    `json:"filename" gorm:"not null"`
	Path       string    `json:"path" gorm:"not null;uniqueIndex"`
	Size       int64     `json:"size" gorm:"not null"`
	MimeType   string    `json:"mime_type" gorm:"not null"`
	UploaderID uint      `json:"uploader_id" gorm:"not null;index"`
}
