package model

import "time"

type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	AuthorName  string    `json:"author_name" gorm:"size:100;not null"`
	AuthorEmail string    `json:"author_email" gorm:"size:255;not null;index"`
	AuthorIP    string    `json:"-" gorm:"size:64;not null;index"`
	UserAgent   *string   `json:"-"`
	Approved    bool      `json:"approved" gorm:"not null;index"`
	Spam        bool      `json:"spam" gorm:"not null;index"`
	PostID      uint      `json:"post_id" gorm:"not null;index"`
}
