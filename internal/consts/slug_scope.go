package consts

// 各实体在标题/名称无法生成 slug 时使用的兜底前缀。
const (
	SlugFallbackPost     = "post"
	SlugFallbackCategory = "category"
	SlugFallbackTag      = "tag"
)

// SlugMaxAttempts 唯一索引冲突时重新解析 slug 的最大次数。
const SlugMaxAttempts = 3
