package service

import (
	"errors"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/logger"

	"gorm.io/gorm"
)

// RetryOnDuplicateKey 执行 write，遇到唯一索引冲突时重新执行（write 内部应重新解析 slug）。
// 并发创建同名实体时，先检查后写入的窗口由数据库唯一索引兜底。
func RetryOnDuplicateKey(entity string, write func(attempt int) error) error {
	var err error
	for attempt := 1; attempt <= consts.SlugMaxAttempts; attempt++ {
		err = write(attempt)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		logger.Warningf("⚠️ %s 写入唯一索引冲突，第 %d 次重试", entity, attempt)
	}
	return err
}
