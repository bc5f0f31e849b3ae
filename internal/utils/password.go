package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash 用户不存在时用于比较的占位哈希，使两种失败路径耗时接近。
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("os-blog-dummy-password"), bcrypt.DefaultCost)

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 使用 bcrypt 常量时间比较密码。
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// BurnPasswordCheck 执行一次必然失败的比较，用于掩盖“用户不存在”的耗时差异。
func BurnPasswordCheck(plain string) {
	_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(plain))
}
