package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"os-blog-server/internal/config"
	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules"
	"os-blog-server/internal/platform/cache"
	"os-blog-server/internal/platform/notify"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"
	"os-blog-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type testApp struct {
	engine     *gin.Engine
	db         *gorm.DB
	appService *platformservice.AppService
	tokens     *utils.TokenCodec
}

func setupRouter(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)

	stores := modules.NewStores(gdb)
	appService := platformservice.NewAppService(stores.Setting)
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("初始化设置失败: %v", err)
	}

	cfg := config.Config{
		Server: config.ServerConfig{CORSOrigins: "https://blog.example.com"},
		JWT:    config.JWTConfig{Secret: "router_test_secret", ExpirationHours: 1},
		Upload: config.UploadConfig{Path: t.TempDir(), URLPrefix: "/uploads/"},
	}
	tokens := utils.NewTokenCodec(cfg.JWT)
	dispatcher := notify.NewDispatcher(appService, notify.DefaultQueueSize)
	appModules := modules.New(appService, stores, tokens, utils.NewCaptcha(), dispatcher, cfg.Upload)

	r := gin.New()
	NewRouter(appModules, appService, cache.NewRedis(config.RedisConfig{}), cfg).Init(r)

	return &testApp{engine: r, db: gdb, appService: appService, tokens: tokens}
}

func (a *testApp) tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := a.tokens.Encode(user.ID)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}
	return token
}

func (a *testApp) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// 测试内容：验证核心 API 路由被正确注册。
func TestInitRouter_RegistersCoreRoutes(t *testing.T) {
	app := setupRouter(t)

	type wantRoute struct {
		method string
		path   string
	}
	wants := []wantRoute{
		{method: "GET", path: "/api/ping"},
		{method: "POST", path: "/api/auth/login"},
		{method: "GET", path: "/api/auth/me"},
		{method: "GET", path: "/api/setup/required"},
		{method: "POST", path: "/api/setup/admin"},
		{method: "GET", path: "/api/posts/published"},
		{method: "GET", path: "/api/posts/slug/:slug"},
		{method: "PATCH", path: "/api/admin/posts/:id"},
		{method: "DELETE", path: "/api/categories/:id"},
		{method: "DELETE", path: "/api/tags/:id"},
		{method: "GET", path: "/api/comments/post/:postId"},
		{method: "POST", path: "/api/comments/:postId"},
		{method: "PATCH", path: "/api/comments/:id/spam"},
		{method: "PATCH", path: "/api/users/me/change-password"},
		{method: "PATCH", path: "/api/users/:id/toggle-status"},
		{method: "POST", path: "/api/files/upload/:category"},
		{method: "GET", path: "/api/settings"},
		{method: "PATCH", path: "/api/admin/blog-settings"},
		{method: "PATCH", path: "/api/admin/settings"},
		{method: "GET", path: "/api/admin/stats"},
	}

	have := make(map[string]bool)
	for _, rt := range app.engine.Routes() {
		have[rt.Method+" "+rt.Path] = true
	}

	for _, w := range wants {
		if !have[w.method+" "+w.path] {
			t.Fatalf("缺少路由: %s %s", w.method, w.path)
		}
	}
}

// 测试内容：验证管理接口按角色区分匿名、作者与管理员。
func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	app := setupRouter(t)
	admin := testutils.CreateUser(t, app.db, "admin", consts.RoleAdmin)
	author := testutils.CreateUser(t, app.db, "author", consts.RoleAuthor)

	if w := app.do(http.MethodGet, "/api/users", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("期望匿名访问返回 401，实际为 %d", w.Code)
	}
	w := app.do(http.MethodGet, "/api/users", app.tokenFor(t, author), "")
	if w.Code != http.StatusForbidden || !strings.Contains(w.Body.String(), "insufficient_role") {
		t.Fatalf("期望作者访问返回 403 insufficient_role，实际为 %d: %s", w.Code, w.Body.String())
	}
	if w := app.do(http.MethodGet, "/api/users", app.tokenFor(t, admin), ""); w.Code != http.StatusOK {
		t.Fatalf("期望管理员访问返回 200，实际为 %d: %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证作者可以访问文章管理接口但不能访问系统统计。
func TestRouter_AuthorCanManagePostsButNotStats(t *testing.T) {
	app := setupRouter(t)
	author := testutils.CreateUser(t, app.db, "author", consts.RoleAuthor)
	token := app.tokenFor(t, author)

	if w := app.do(http.MethodGet, "/api/admin/posts", token, ""); w.Code != http.StatusOK {
		t.Fatalf("期望作者可以列出自己的文章，实际为 %d: %s", w.Code, w.Body.String())
	}
	if w := app.do(http.MethodGet, "/api/admin/stats", token, ""); w.Code != http.StatusForbidden {
		t.Fatalf("期望作者访问统计返回 403，实际为 %d", w.Code)
	}
}

// 测试内容：验证需要改密的账号只能访问改密接口。
func TestRouter_TemporaryPasswordOnlyReachesChangePassword(t *testing.T) {
	app := setupRouter(t)
	user := testutils.CreateUser(t, app.db, "newbie", consts.RoleAuthor)
	if err := app.db.Model(&model.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"is_temporary_password": true,
		"must_change_password":  true,
	}).Error; err != nil {
		t.Fatalf("更新用户失败: %v", err)
	}
	token := app.tokenFor(t, user)

	w := app.do(http.MethodGet, "/api/auth/me", token, "")
	if w.Code != http.StatusForbidden || !strings.Contains(w.Body.String(), "password_change_required") {
		t.Fatalf("期望返回 403 password_change_required，实际为 %d: %s", w.Code, w.Body.String())
	}

	w = app.do(http.MethodPatch, "/api/users/me/change-password", token, `{"new_password":"BrandNew123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("期望改密成功，实际为 %d: %s", w.Code, w.Body.String())
	}

	if w := app.do(http.MethodGet, "/api/auth/me", token, ""); w.Code != http.StatusOK {
		t.Fatalf("期望改密后可正常访问，实际为 %d: %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证未发布文章对匿名访问者返回 404，对作者本人可见。
func TestRouter_UnpublishedSlugHiddenFromAnonymous(t *testing.T) {
	app := setupRouter(t)
	author := testutils.CreateUser(t, app.db, "author", consts.RoleAuthor)
	testutils.CreatePost(t, app.db, author.ID, "draft-post", false)

	if w := app.do(http.MethodGet, "/api/posts/slug/draft-post", "", ""); w.Code != http.StatusNotFound {
		t.Fatalf("期望匿名访问草稿返回 404，实际为 %d", w.Code)
	}
	if w := app.do(http.MethodGet, "/api/posts/slug/draft-post", app.tokenFor(t, author), ""); w.Code != http.StatusOK {
		t.Fatalf("期望作者可以预览草稿，实际为 %d: %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证登录接口超过突发限制后返回 429。
func TestRouter_LoginLimiter(t *testing.T) {
	app := setupRouter(t)
	if err := app.db.Model(&model.Setting{}).
		Where(map[string]interface{}{"key": consts.ConfigRateLimitLoginBurst}).
		Update("value", "1").Error; err != nil {
		t.Fatalf("更新设置失败: %v", err)
	}
	app.appService.ClearCache()

	body := `{"identifier":"nobody","password":"Password123"}`
	if w := app.do(http.MethodPost, "/api/auth/login", "", body); w.Code == http.StatusTooManyRequests {
		t.Fatalf("期望首次登录不被限流，实际为 %d", w.Code)
	}
	w := app.do(http.MethodPost, "/api/auth/login", "", body)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("期望第二次登录返回 429，实际为 %d: %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证允许的来源可以完成跨域预检。
func TestRouter_CORSPreflight(t *testing.T) {
	app := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/posts/published", nil)
	req.Header.Set("Origin", "https://blog.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("期望预检返回 204，实际为 %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://blog.example.com" {
		t.Fatalf("期望回显允许的来源，实际为 %q", got)
	}
}

// 测试内容：验证匿名访问的文章与评论接口不返回任何邮箱或账号状态字段。
func TestRouter_PublicResponsesHidePersonalData(t *testing.T) {
	app := setupRouter(t)
	author := testutils.CreateUser(t, app.db, "author", consts.RoleAuthor)
	post := testutils.CreatePost(t, app.db, author.ID, "open-post", true)
	comment := &model.Comment{
		Content:     "great",
		AuthorName:  "Bob",
		AuthorEmail: "bob-secret@example.com",
		AuthorIP:    "10.0.0.9",
		Approved:    true,
		PostID:      post.ID,
	}
	if err := app.db.Create(comment).Error; err != nil {
		t.Fatalf("写入评论失败: %v", err)
	}

	paths := []string{
		"/api/posts/published",
		"/api/posts/slug/open-post",
		fmt.Sprintf("/api/comments/post/%d", post.ID),
	}
	for _, path := range paths {
		w := app.do(http.MethodGet, path, "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: 期望 200，实际为 %d: %s", path, w.Code, w.Body.String())
		}
		body := w.Body.String()
		for _, leaked := range []string{"@example.com", "email", "must_change_password", "last_login_at", "role"} {
			if strings.Contains(body, leaked) {
				t.Fatalf("%s: 响应中不应包含 %q: %s", path, leaked, body)
			}
		}
	}

	w := app.do(http.MethodGet, "/api/posts/slug/open-post", "", "")
	if !strings.Contains(w.Body.String(), `"username":"author"`) {
		t.Fatalf("期望公开作者资料包含用户名，实际为 %s", w.Body.String())
	}
}

// 测试内容：验证同一 IP 快速提交第 4 条评论时由评论窗口限制拦截，原因为 ip_limit 而非接口限流。
func TestRouter_CommentIPLimitReasonSurvivesLimiter(t *testing.T) {
	app := setupRouter(t)
	author := testutils.CreateUser(t, app.db, "author", consts.RoleAuthor)
	post := testutils.CreatePost(t, app.db, author.ID, "busy-post", true)
	path := fmt.Sprintf("/api/comments/%d", post.ID)

	for i := 1; i <= 3; i++ {
		body := fmt.Sprintf(`{"content":"comment %d","author_name":"Reader","author_email":"reader%d@example.com"}`, i, i)
		if w := app.do(http.MethodPost, path, "", body); w.Code >= http.StatusMultipleChoices {
			t.Fatalf("第 %d 条评论期望成功，实际为 %d: %s", i, w.Code, w.Body.String())
		}
	}

	w := app.do(http.MethodPost, path, "", `{"content":"comment 4","author_name":"Reader","author_email":"reader4@example.com"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("期望第 4 条评论返回 429，实际为 %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"reason":"ip_limit"`) {
		t.Fatalf("期望原因为 ip_limit，实际为 %s", w.Body.String())
	}
}
