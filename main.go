package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"os-blog-server/internal/config"
	"os-blog-server/internal/consts"
	"os-blog-server/internal/db"
	"os-blog-server/internal/di"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/middleware"
	"os-blog-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func main() {
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	configDir := flag.String("config-dir", "", "配置文件目录（默认 config）")
	flag.Parse()

	config.InitConfig(*configDir)
	cfg := config.Get()
	logger.InitLogger(cfg.Log.Level)

	gdb, err := db.InitDB(cfg.Database)
	if err != nil {
		logger.Fatalf("❌ 数据库连接失败: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logger.Fatalf("❌ 数据库迁移失败: %v", err)
	}

	app, err := di.InitializeApplication(gdb, cfg)
	if err != nil {
		logger.Fatalf("❌ 依赖初始化失败: %v", err)
	}
	if err := app.AppService.InitializeSettings(); err != nil {
		logger.Fatalf("❌ %v", err)
	}

	uploadPath := ensureDirectories(cfg.Upload)

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	applyTrustedProxies(r, cfg.Server.TrustedProxyList())
	app.Router.Init(r)
	setupStaticFiles(r, app.AppService, cfg.Upload.URLPrefix, uploadPath)

	distFS := GetFrontendAssets()
	indexData := setupFrontend(r, distFS)
	r.NoRoute(getNoRouteHandler(distFS, indexData, cfg.Upload.URLPrefix))

	// 导出模式
	if *exportRoutes {
		exportAPI(r)
		return // 导出后直接退出程序，不启动 Web 服务
	}

	printWelcomeMessage(cfg.Server.Port, distFS)

	app.Dispatcher.Start()
	app.Scheduler.Start()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Infof("🚀 服务启动成功，运行在 :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("❌ 服务启动失败: %s", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("❌ 服务强制关闭: %v", err)
	}
	app.Scheduler.Stop()
	if err := app.Dispatcher.Stop(ctx); err != nil {
		logger.Warningf("⚠️ 通知队列未能在超时前清空: %v", err)
	}
	if err := app.Redis.Close(); err != nil {
		logger.Warningf("⚠️ 关闭 Redis 连接失败: %v", err)
	}
	logger.Info("✅ 服务已退出")
}

// ensureDirectories 校验并创建上传目录，返回实际使用的路径。
func ensureDirectories(upload config.UploadConfig) string {
	uploadPath := upload.Path
	if strings.TrimSpace(uploadPath) == "" {
		uploadPath = "uploads/files"
	}
	checkSecurePath(uploadPath)
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		logger.Fatalf("❌ 无法创建上传目录: %v", err)
	}
	return uploadPath
}

// applyTrustedProxies 空列表表示不信任任何代理；列表无效时同样回退为不信任。
func applyTrustedProxies(r *gin.Engine, proxies []string) {
	if len(proxies) == 0 {
		_ = r.SetTrustedProxies(nil)
		return
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		logger.Warningf("⚠️ 可信代理配置无效，已禁用代理信任: %v", err)
		_ = r.SetTrustedProxies(nil)
	}
}

// setupStaticFiles 使用带缓存控制的静态文件服务挂载上传目录。
func setupStaticFiles(r *gin.Engine, appService *service.AppService, urlPrefix, uploadPath string) {
	r.Group(urlPrefix, middleware.StaticCacheMiddleware(appService)).
		StaticFS("", gin.Dir(uploadPath, false))
}

func getNoRouteHandler(distFS fs.FS, indexData []byte, uploadPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API not found", "code": "not_found"})
			return
		}
		if uploadPrefix != "" && strings.HasPrefix(path, uploadPrefix) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found", "code": "not_found"})
			return
		}
		if distFS == nil || indexData == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "code": "not_found"})
			return
		}

		// 尝试直接服务根目录下的静态文件 (如 favicon.ico, manifest.json)
		name := strings.TrimPrefix(path, "/")
		if name != "" {
			if f, err := distFS.Open(name); err == nil {
				stat, statErr := f.Stat()
				_ = f.Close()
				if statErr == nil && !stat.IsDir() {
					c.FileFromFS(name, http.FS(distFS))
					return
				}
			}
		}

		// SPA 回退：服务 index.html 内容
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexData)
	}
}

func printWelcomeMessage(port string, distFS fs.FS) {
	frontendVersion := "未嵌入"
	if distFS != nil {
		frontendVersion = "未知版本"
		if vData, err := fs.ReadFile(distFS, "version"); err == nil {
			frontendVersion = strings.TrimSpace(string(vData))
		}
	}

	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   💻  前端版本 : %s\n", frontendVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) {
	routes := r.Routes()

	// 简单的结构体，只留关键信息
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		logger.Errorf("❌ 路由序列化失败: %v", err)
		return
	}
	if err := os.WriteFile("routes.json", file, 0644); err != nil {
		logger.Errorf("❌ 写入 routes.json 失败: %v", err)
		return
	}

	logger.Info("✅ 路由已成功导出到 routes.json")
}

func checkSecurePath(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.Fatalf("❌ 路径解析失败: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		logger.Fatalf("❌ 无法获取当前工作目录: %v", err)
	}

	// 检查是否直接指向项目根目录
	if absPath == cwd {
		logger.Fatalf("❌ 安全配置错误: 上传目录 '%s' 不能设置为项目根目录！这会导致源代码泄露。", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		// 工作目录之外的绝对路径由部署方自行负责
		return
	}

	// 只有位于这些目录下的路径才被允许作为静态资源目录
	allowedDirs := []string{"uploads", "public", "assets", "static", "tmp"}
	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return
		}
	}
	logger.Fatalf("❌ 安全配置错误: 上传目录 '%s' 必须位于项目根目录下的安全子目录中 (如 %v)。", path, allowedDirs)
}
