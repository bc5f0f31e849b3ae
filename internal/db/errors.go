package db

import (
	"errors"

	"gorm.io/gorm"
)

// IsDuplicatedKey 判断错误是否由唯一约束冲突引起。
func IsDuplicatedKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsNotFound 判断错误是否为记录不存在。
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
