package utils

import (
	"io"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	usernamePattern   = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	allDigitsPattern  = regexp.MustCompile(`^[0-9]+$`)
	passwordCharset   = regexp.MustCompile(`^[a-zA-Z0-9[:punct:]]+$`)
	hasLetterPattern  = regexp.MustCompile(`[a-zA-Z]`)
	hasDigitPattern   = regexp.MustCompile(`[0-9]`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	hexColorPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	uploadContentType = map[string]map[string]bool{
		"image/jpeg":     {".jpg": true, ".jpeg": true},
		"image/png":      {".png": true},
		"image/gif":      {".gif": true},
		"image/webp":     {".webp": true},
		"image/bmp":      {".bmp": true},
		"image/x-ms-bmp": {".bmp": true},
		"image/x-icon":   {".ico": true},
	}
)

// ValidateUsername 用户名 3-32 位，只允许字母、数字和下划线，且不能为纯数字。
func ValidateUsername(username string) (bool, string) {
	if n := len(username); n < 3 || n > 32 {
		return false, "用户名长度必须在 3 到 32 位之间"
	}
	if !usernamePattern.MatchString(username) {
		return false, "用户名只能包含英文大小写、数字和下划线"
	}
	if allDigitsPattern.MatchString(username) {
		return false, "用户名不能为纯数字"
	}
	return true, ""
}

// ValidatePassword 密码至少 8 位，只允许 ASCII 字母、数字和符号，并且同时包含字母和数字。
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "密码最少8位"
	}
	if len(password) > 72 {
		return false, "密码最多72位"
	}
	if !passwordCharset.MatchString(password) {
		return false, "密码只能包含英文大小写、数字和符号"
	}
	if !hasLetterPattern.MatchString(password) || !hasDigitPattern.MatchString(password) {
		return false, "密码必须包含至少一个字母和一个数字"
	}
	return true, ""
}

func ValidateEmail(email string) (bool, string) {
	if strings.TrimSpace(email) == "" {
		return false, "邮箱不能为空"
	}
	if len(email) > 255 || !emailPattern.MatchString(email) {
		return false, "邮箱格式不正确"
	}
	return true, ""
}

// NormalizeEmail 邮箱统一去空白并转小写后存储和比较。
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateLength 按字符数校验文本长度，min 为 0 时允许为空。
func ValidateLength(value, label string, min, max int) (bool, string) {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if min > 0 && n == 0 {
		return false, label + "不能为空"
	}
	if n < min {
		return false, label + "过短"
	}
	if max > 0 && n > max {
		return false, label + "过长"
	}
	return true, ""
}

func ValidateHexColor(color string) (bool, string) {
	if !hexColorPattern.MatchString(color) {
		return false, "颜色必须是 #RGB 或 #RRGGBB 格式"
	}
	return true, ""
}

// ValidateImageContent 读取文件头判断真实类型与扩展名是否一致，读取后会把位置重置到开头。
func ValidateImageContent(reader io.ReadSeeker, ext string) (bool, string) {
	buffer := make([]byte, 512)
	if _, err := reader.Read(buffer); err != nil && err != io.EOF {
		return false, "读取文件内容失败"
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return false, "重置文件读取位置失败"
	}

	contentType := http.DetectContentType(buffer)
	if exts, ok := uploadContentType[contentType]; ok && exts[strings.ToLower(ext)] {
		return true, ""
	}
	return false, "文件真实类型(" + contentType + ")与扩展名(" + ext + ")不匹配或不支持"
}
