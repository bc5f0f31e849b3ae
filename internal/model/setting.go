package model

// Setting 运行时可调整的键值配置项。
type Setting struct {
	Key       string `json:"key" gorm:"primaryKey;size:100"`
	Value     string `json:"value"`
	Desc      string `json:"desc"`
	Category  string `json:"category" gorm:"size:50"`
	Sensitive bool   `json:"sensitive" gorm:"not null"`
}
