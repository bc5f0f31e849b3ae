package model

import "time"

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:120;not null"`
	Description *string   `json:"description"`
	Color       *string   `json:"color" gorm:"size:16"`
	CreatedBy   uint      `json:"created_by" gorm:"not null;index"`
}

type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:64;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:80;not null"`
}
