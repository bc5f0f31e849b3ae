package router

import (
	"os-blog-server/internal/config"
	"os-blog-server/internal/consts"
	"os-blog-server/internal/middleware"
	"os-blog-server/internal/modules"
	"os-blog-server/internal/modules/access"
	"os-blog-server/internal/platform/cache"
	"os-blog-server/internal/platform/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
	cache   *cache.Redis
	server  config.ServerConfig
	upload  config.UploadConfig
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService, redisCache *cache.Redis, cfg config.Config) *Router {
	return &Router{
		modules: appModules,
		service: appService,
		cache:   redisCache,
		server:  cfg.Server,
		upload:  cfg.Upload,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 全局：HTTPS 跳转、安全标头、跨域
	r.Use(middleware.ForceHTTPSMiddleware(rt.server.ForceHTTPS))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware(rt.server.CORSOriginList()))
	// 上传的文件本身已是压缩格式，不再重复压缩
	var gzipOptions []gzip.Option
	if rt.upload.URLPrefix != "" {
		gzipOptions = append(gzipOptions, gzip.WithExcludedPaths([]string{rt.upload.URLPrefix}))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzipOptions...))

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	// 登录与初始化共用同一个限流实例
	loginLimiter := middleware.RateLimitMiddleware(rt.service, rt.cache, "login", consts.ConfigRateLimitLoginRPS, consts.ConfigRateLimitLoginBurst)
	uploadLimiter := middleware.RateLimitMiddleware(rt.service, rt.cache, "upload", consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst)
	commentLimiter := middleware.RateLimitMiddleware(rt.service, rt.cache, "comment", consts.ConfigRateLimitCommentRPS, consts.ConfigRateLimitCommentBurst)

	g := guards{
		full:          middleware.Guard(rt.modules.Chain, access.Full),
		allowTempPass: middleware.Guard(rt.modules.Chain, access.AllowTemporaryPassword),
		optional:      middleware.Guard(rt.modules.Chain, access.Optional),
		admin:         middleware.Guard(rt.modules.Chain, access.AdminOnly),
	}

	registerPublicRoutes(api, rt.modules)
	registerAuthRoutes(api, loginLimiter, g, rt.modules)
	registerContentRoutes(api, g, rt.modules)
	registerCommentRoutes(api, commentLimiter, g, rt.modules)
	registerUserRoutes(api, g, rt.modules)
	registerFileRoutes(api, uploadLimiter, middleware.UploadBodyLimitMiddleware(rt.service), g, rt.modules)
	registerAdminRoutes(api, g, rt.modules)
}

// guards 按访问策略预先构造的鉴权中间件。
type guards struct {
	full          gin.HandlerFunc
	allowTempPass gin.HandlerFunc
	optional      gin.HandlerFunc
	admin         gin.HandlerFunc
}
