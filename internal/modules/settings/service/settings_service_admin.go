package service

import (
	"net/url"
	"strconv"
	"strings"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	moduledto "os-blog-server/internal/modules/settings/dto"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	platformservice "os-blog-server/internal/platform/service"
)

// AdminListSettings 获取全部运行时设置。
func (s *Service) AdminListSettings() ([]model.Setting, error) {
	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.NewInternalError("获取配置失败")
	}

	sortSettingsForAdmin(settings)
	maskSensitiveSettings(settings)
	return settings, nil
}

// AdminUpdateSettings 批量更新运行时设置，并在成功后清理配置缓存。
func (s *Service) AdminUpdateSettings(items []moduledto.UpdateSettingRequest) error {
	for _, item := range items {
		if err := validateSettingUpdate(item); err != nil {
			return err
		}
	}

	repoItems := make([]settingsrepo.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		repoItems = append(repoItems, settingsrepo.UpdateSettingItem{
			Key:   strings.TrimSpace(item.Key),
			Value: strings.TrimSpace(item.Value),
		})
	}

	if err := s.settingStore.UpdateSettings(repoItems, maskedSettingValue); err != nil {
		logger.Errorf("❌ 更新运行时配置失败: %v", err)
		return platformservice.NewInternalError("更新失败")
	}

	s.ClearCache()
	return nil
}

var (
	boolSettingKeys = map[string]bool{
		consts.ConfigAllowInit:             true,
		consts.ConfigCommentsEnabled:       true,
		consts.ConfigCommentCaptchaEnabled: true,
		consts.ConfigRateLimitEnabled:      true,
	}
	// 必须为正整数
	positiveIntSettingKeys = map[string]bool{
		consts.ConfigCommentRateLimitIP:        true,
		consts.ConfigCommentRateLimitEmail:     true,
		consts.ConfigCommentRateWindowMinutes:  true,
		consts.ConfigMaxUploadSize:             true,
		consts.ConfigMaxRequestBodySize:        true,
		consts.ConfigStaticRegenTimeoutSeconds: true,
		consts.ConfigRateLimitLoginBurst:       true,
		consts.ConfigRateLimitUploadBurst:      true,
		consts.ConfigRateLimitCommentBurst:     true,
	}
	positiveFloatSettingKeys = map[string]bool{
		consts.ConfigRateLimitLoginRPS:   true,
		consts.ConfigRateLimitUploadRPS:  true,
		consts.ConfigRateLimitCommentRPS: true,
	}
)

func validateSettingUpdate(item moduledto.UpdateSettingRequest) error {
	key := strings.TrimSpace(item.Key)
	if key == "" {
		return platformservice.NewValidationError("配置键不能为空")
	}
	if !isKnownSetting(key) {
		return settingFieldError(key, "未知的配置项")
	}

	value := strings.TrimSpace(item.Value)
	switch {
	case boolSettingKeys[key]:
		if _, err := strconv.ParseBool(value); err != nil {
			return settingFieldError(key, "必须为 true 或 false")
		}
	case positiveIntSettingKeys[key]:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return settingFieldError(key, "必须为正整数")
		}
	case positiveFloatSettingKeys[key]:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return settingFieldError(key, "必须为正数")
		}
	case key == consts.ConfigSpamRetentionDays:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return settingFieldError(key, "必须为非负整数")
		}
	case key == consts.ConfigAllowFileExtensions:
		for _, ext := range strings.Split(value, ",") {
			if ext = strings.TrimSpace(ext); !strings.HasPrefix(ext, ".") || len(ext) < 2 {
				return settingFieldError(key, "扩展名需以 . 开头并以逗号分隔")
			}
		}
	case key == consts.ConfigStaticRegenWebhookURL:
		if value == "" || value == maskedSettingValue {
			return nil
		}
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return settingFieldError(key, "必须是 http(s) 地址")
		}
	}
	return nil
}

func settingFieldError(key, message string) error {
	return platformservice.NewFieldValidationError(message, map[string]string{key: message})
}
