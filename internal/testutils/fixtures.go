package testutils

import (
	"testing"
	"time"

	"os-blog-server/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every user created by CreateUser.
const TestPassword = "Password123"

var cachedHash []byte

// PasswordHash returns a bcrypt hash of TestPassword using the minimum cost.
func PasswordHash(t *testing.T) string {
	t.Helper()
	if cachedHash == nil {
		h, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		cachedHash = h
	}
	return string(cachedHash)
}

// CreateUser inserts an active user with TestPassword.
func CreateUser(t *testing.T, gdb *gorm.DB, username, role string) *model.User {
	t.Helper()
	u := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: PasswordHash(t),
		Role:     role,
		Active:   true,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

// CreatePost inserts a post owned by authorID. A published post gets PublishedAt set to now.
func CreatePost(t *testing.T, gdb *gorm.DB, authorID uint, slug string, published bool) *model.Post {
	t.Helper()
	p := &model.Post{
		Title:     slug,
		Slug:      slug,
		Content:   "content of " + slug,
		Published: published,
		AuthorID:  authorID,
	}
	if published {
		now := time.Now()
		p.PublishedAt = &now
	}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("create post %q: %v", slug, err)
	}
	return p
}
