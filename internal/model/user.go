package model

import (
	"time"
)

type User struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	Username            string     `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Email               string     `json:"email" gorm:"uniqueIndex;size:255;not null"` // 统一小写存储
	Password            string     `json:"-" gorm:"not null"`
	Role                string     `json:"role" gorm:"size:16;not null;index"`
	Active              bool       `json:"active" gorm:"not null"`
	IsTemporaryPassword bool       `json:"is_temporary_password" gorm:"not null"`
	MustChangePassword  bool       `json:"must_change_password" gorm:"not null"`
	LastLoginAt         *time.Time `json:"last_login_at"`
	PasswordChangedAt   *time.Time `json:"password_changed_at"`
	PasswordResetAt     *time.Time `json:"password_reset_at"`
	FirstName           string     `json:"first_name" gorm:"size:64"`
	LastName            string     `json:"last_name" gorm:"size:64"`
	ProfilePicture      string     `json:"profile_picture"`
}
