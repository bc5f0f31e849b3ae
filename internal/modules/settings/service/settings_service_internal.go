package service

import (
	"sort"

	"os-blog-server/internal/model"
	platformservice "os-blog-server/internal/platform/service"
)

const maskedSettingValue = "**********"

// adminCategoryOrder 后台设置页的分组顺序：写作与评论相关的分组在前，基础设施在后。
// 默认配置中未列出的分组按首次出现顺序追加到末尾。
var adminCategoryOrder = []string{"系统", "评论", "静态资源", "上传", "安全"}

// settingPosition 默认配置项在后台列表中的位置。
type settingPosition struct {
	group int
	index int
}

var knownSettingPositions = buildSettingPositions(platformservice.DefaultSettings)

// isKnownSetting 判断 key 是否为默认配置中定义的配置项。
func isKnownSetting(key string) bool {
	_, ok := knownSettingPositions[key]
	return ok
}

// maskSensitiveSettings 只对已填写的敏感值脱敏，空值原样返回，后台据此显示"未配置"。
func maskSensitiveSettings(settings []model.Setting) {
	for i := range settings {
		if settings[i].Sensitive && settings[i].Value != "" {
			settings[i].Value = maskedSettingValue
		}
	}
}

// sortSettingsForAdmin 先按分组顺序、再按组内定义顺序排列，未知配置项按分组名与 key 排在最后。
func sortSettingsForAdmin(settings []model.Setting) {
	sort.SliceStable(settings, func(i, j int) bool {
		left, leftKnown := knownSettingPositions[settings[i].Key]
		right, rightKnown := knownSettingPositions[settings[j].Key]
		if leftKnown && rightKnown {
			if left.group != right.group {
				return left.group < right.group
			}
			return left.index < right.index
		}
		if leftKnown != rightKnown {
			return leftKnown
		}

		if settings[i].Category != settings[j].Category {
			return settings[i].Category < settings[j].Category
		}
		return settings[i].Key < settings[j].Key
	})
}

func buildSettingPositions(defaults []model.Setting) map[string]settingPosition {
	groups := make(map[string]int, len(adminCategoryOrder))
	for i, category := range adminCategoryOrder {
		groups[category] = i
	}

	positions := make(map[string]settingPosition, len(defaults))
	for i, setting := range defaults {
		group, ok := groups[setting.Category]
		if !ok {
			group = len(groups)
			groups[setting.Category] = group
		}
		positions[setting.Key] = settingPosition{group: group, index: i}
	}
	return positions
}
