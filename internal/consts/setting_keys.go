package consts

const (

	// ConfigAllowInit 是否允许初始化管理员账号 (true/false)
	ConfigAllowInit = "allow_init"

	// ConfigCommentsEnabled 是否开放评论
	ConfigCommentsEnabled = "comments_enabled"

	// ConfigCommentRateLimitIP 单个 IP 在窗口期内允许提交的评论数
	ConfigCommentRateLimitIP = "comment_rate_limit_ip"

	// ConfigCommentRateLimitEmail 单个邮箱在窗口期内允许提交的评论数
	ConfigCommentRateLimitEmail = "comment_rate_limit_email"

	// ConfigCommentRateWindowMinutes 评论频率统计窗口 (分钟)
	ConfigCommentRateWindowMinutes = "comment_rate_window_minutes"

	// ConfigCommentCaptchaEnabled 评论是否需要图形验证码
	ConfigCommentCaptchaEnabled = "comment_captcha_enabled"

	// ConfigMaxUploadSize 文件最大上传限制 (MB)
	ConfigMaxUploadSize = "max_upload_size"

	// ConfigAllowFileExtensions 允许上传的文件扩展名 (逗号分隔)
	ConfigAllowFileExtensions = "allow_file_extensions"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitLoginRPS 登录接口限流 RPS
	ConfigRateLimitLoginRPS = "rate_limit_login_rps"

	// ConfigRateLimitLoginBurst 登录接口限流 Burst
	ConfigRateLimitLoginBurst = "rate_limit_login_burst"

	// ConfigRateLimitUploadRPS 上传接口限流 RPS
	ConfigRateLimitUploadRPS = "rate_limit_upload_rps"

	// ConfigRateLimitUploadBurst 上传接口限流 Burst
	ConfigRateLimitUploadBurst = "rate_limit_upload_burst"

	// ConfigRateLimitCommentRPS 评论提交接口限流 RPS
	ConfigRateLimitCommentRPS = "rate_limit_comment_rps"

	// ConfigRateLimitCommentBurst 评论提交接口限流 Burst
	ConfigRateLimitCommentBurst = "rate_limit_comment_burst"

	// ConfigMaxRequestBodySize 最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigStaticCacheControl 静态资源缓存设置 (Cache-Control header value)
	ConfigStaticCacheControl = "static_cache_control"

	// ConfigStaticRegenWebhookURL 静态站点重新生成的 Webhook 地址，为空表示关闭
	ConfigStaticRegenWebhookURL = "static_regen_webhook_url"

	// ConfigStaticRegenTimeoutSeconds Webhook 请求超时 (秒)
	ConfigStaticRegenTimeoutSeconds = "static_regen_timeout_seconds"

	// ConfigSpamRetentionDays 垃圾评论保留天数，0 表示不清理
	ConfigSpamRetentionDays = "spam_retention_days"
)
