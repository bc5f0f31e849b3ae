package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugSeparators = regexp.MustCompile(`[\s-]+`)

// maxSlugProbe 线性探测的上限，防止异常的存在性判断导致死循环。
const maxSlugProbe = 10000

func slugFolder() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Slugify 将任意文本转换为 URL 安全的 slug。
// 先做 NFKD 分解并去掉组合音标（é → e），再转小写，只保留 a-z、0-9、空白和连字符，
// 下划线和其他符号直接丢弃（Foo_Bar → foobar），连续的空白/连字符折叠为单个 "-"，最后去掉首尾的 "-"。
func Slugify(text string) string {
	folded, _, err := transform.String(slugFolder(), text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Trim(slugSeparators.ReplaceAllString(b.String(), "-"), "-")
}

// SlugifyOr 与 Slugify 相同，结果为空时返回 fallback。
func SlugifyOr(text, fallback string) string {
	if s := Slugify(text); s != "" {
		return s
	}
	return fallback
}

// EnsureUnique 依次尝试 base、base-1、base-2……直到 exists 返回 false。
func EnsureUnique(base string, exists func(candidate string) (bool, error)) (string, error) {
	candidate := base
	for i := 1; i <= maxSlugProbe; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("无法为 %q 生成唯一 slug", base)
}
