package service

import (
	"fmt"
	"strconv"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
)

const DefaultValueNotFound = "||__NOT_FOUND__||"

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigAllowInit, Value: "true", Desc: "是否允许初始化管理员账号", Category: "系统"},
	{Key: consts.ConfigCommentsEnabled, Value: "true", Desc: "是否开放评论 (true/false)", Category: "评论"},
	{Key: consts.ConfigCommentRateLimitIP, Value: "3", Desc: "单个 IP 在统计窗口内最多提交的评论数", Category: "评论"},
	{Key: consts.ConfigCommentRateLimitEmail, Value: "5", Desc: "单个邮箱在统计窗口内最多提交的评论数", Category: "评论"},
	{Key: consts.ConfigCommentRateWindowMinutes, Value: "15", Desc: "评论频率统计窗口 (分钟)", Category: "评论"},
	{Key: consts.ConfigCommentCaptchaEnabled, Value: "false", Desc: "提交评论是否需要图形验证码", Category: "评论"},
	{Key: consts.ConfigSpamRetentionDays, Value: "30", Desc: "垃圾评论保留天数，0 表示不自动清理", Category: "评论"},
	{Key: consts.ConfigMaxUploadSize, Value: "10", Desc: "单个文件最大大小 (MB)", Category: "上传"},
	{Key: consts.ConfigAllowFileExtensions, Value: ".jpg,.jpeg,.png,.gif,.webp,.ico", Desc: "允许上传的文件扩展名", Category: "上传"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流", Category: "安全"},
	{Key: consts.ConfigRateLimitLoginRPS, Value: "0.0833", Desc: "登录接口每秒请求限制 (RPS，默认约每分钟 5 次)", Category: "安全"},
	{Key: consts.ConfigRateLimitLoginBurst, Value: "5", Desc: "登录接口突发请求限制", Category: "安全"},
	{Key: consts.ConfigRateLimitUploadRPS, Value: "1.0", Desc: "上传接口每秒请求限制 (RPS)", Category: "安全"},
	{Key: consts.ConfigRateLimitUploadBurst, Value: "5", Desc: "上传接口突发请求限制", Category: "安全"},
	{Key: consts.ConfigRateLimitCommentRPS, Value: "0.2", Desc: "评论提交接口每秒请求限制 (RPS)", Category: "安全"},
	{Key: consts.ConfigRateLimitCommentBurst, Value: "10", Desc: "评论提交接口突发请求限制，应高于单 IP 评论数上限", Category: "安全"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "非文件上传接口最大请求体限制 (MB)", Category: "安全"},
	{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=31536000", Desc: "静态资源缓存设置 (Cache-Control)", Category: "静态资源"},
	{Key: consts.ConfigStaticRegenWebhookURL, Value: "", Desc: "静态站点重新生成 Webhook 地址，为空表示关闭", Category: "静态资源", Sensitive: true},
	{Key: consts.ConfigStaticRegenTimeoutSeconds, Value: "5", Desc: "静态站点 Webhook 请求超时 (秒)", Category: "静态资源"},
}

// DefaultSettingKeys 返回全部默认配置键。
func DefaultSettingKeys() []string {
	keys := make([]string, 0, len(DefaultSettings))
	for _, def := range DefaultSettings {
		keys = append(keys, def.Key)
	}
	return keys
}

func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value interface{}) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

// InitializeSettings 写入缺失的默认配置并同步元数据，随后清理不再使用的配置键。
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(DefaultSettings); err != nil {
		return fmt.Errorf("初始化默认配置失败: %w", err)
	}
	if err := s.settingStore.DeleteNotInKeys(DefaultSettingKeys()); err != nil {
		return fmt.Errorf("清理过期配置失败: %w", err)
	}
	s.ClearCache()
	return nil
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		if strVal, ok := val.(string); ok {
			if strVal == DefaultValueNotFound {
				return ""
			}
			return strVal
		}
		s.settingsCache.Delete(key)
	}

	setting, err := s.settingStore.FindByKey(key)
	if err != nil {
		// 数据库没查到，尝试查找默认配置
		for _, def := range DefaultSettings {
			if def.Key == key {
				newSetting := def
				// 并发写入可能主键冲突，忽略即可
				if createErr := s.settingStore.Create(&newSetting); createErr != nil {
					logger.Debugf("写入默认配置 %s 失败: %v", key, createErr)
				}
				s.settingsCache.Store(key, newSetting.Value)
				return newSetting.Value
			}
		}

		s.settingsCache.Store(key, DefaultValueNotFound)
		return ""
	}

	s.settingsCache.Store(key, setting.Value)
	return setting.Value
}

func (s *AppService) GetInt(key string) int {
	val, err := strconv.Atoi(s.GetString(key))
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetInt64(key string) int64 {
	val, err := strconv.ParseInt(s.GetString(key), 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	val, err := strconv.ParseFloat(s.GetString(key), 64)
	if err != nil {
		return 0
	}
	return val
}

// GetBool 支持 "1", "t", "T", "true", "TRUE", "True"，无法解析时返回 false。
func (s *AppService) GetBool(key string) bool {
	val, err := strconv.ParseBool(s.GetString(key))
	if err != nil {
		return false
	}
	return val
}
