package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"os-blog-server/internal/config"
	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/access"
	userrepo "os-blog-server/internal/modules/user/repo"
	"os-blog-server/internal/testutils"
	"os-blog-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newGuardRouter(t *testing.T) (*gin.Engine, *gorm.DB, *utils.TokenCodec) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	codec := utils.NewTokenCodec(config.JWTConfig{Secret: "guard_test_secret", ExpirationHours: 1})
	chain := access.NewChain(codec, userrepo.NewUserRepository(gdb))

	whoami := func(c *gin.Context) {
		if p, ok := access.PrincipalFrom(c); ok {
			c.String(http.StatusOK, p.Username)
			return
		}
		reason, _ := access.AuthErrorFrom(c)
		c.String(http.StatusOK, "anonymous:"+reason)
	}

	r := gin.New()
	r.GET("/full", Guard(chain, access.Full), whoami)
	r.GET("/admin", Guard(chain, access.AdminOnly), whoami)
	r.GET("/optional", Guard(chain, access.Optional), whoami)
	return r, gdb, codec
}

func get(r http.Handler, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, codec *utils.TokenCodec, id uint) string {
	t.Helper()
	token, err := codec.Encode(id)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	return "Bearer " + token
}

// 测试内容：验证缺少或格式错误的 Authorization 头返回 401。
func TestGuard_MissingOrMalformedHeader(t *testing.T) {
	r, _, _ := newGuardRouter(t)

	for _, header := range []string{"", "Token abc", "Bearer "} {
		if w := get(r, "/full", header); w.Code != http.StatusUnauthorized {
			t.Fatalf("头 %q 期望 401，实际为 %d", header, w.Code)
		}
	}
}

// 测试内容：验证有效令牌写入 Principal，停用账号在下一次请求即失效。
func TestGuard_FullAndDeactivation(t *testing.T) {
	r, gdb, codec := newGuardRouter(t)
	user := testutils.CreateUser(t, gdb, "alice", consts.RoleAuthor)
	auth := tokenFor(t, codec, user.ID)

	w := get(r, "/full", auth)
	if w.Code != http.StatusOK || w.Body.String() != "alice" {
		t.Fatalf("期望 200 alice，实际为 %d %s", w.Code, w.Body.String())
	}

	gdb.Model(&model.User{}).Where("id = ?", user.ID).Update("active", false)
	w = get(r, "/full", auth)
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), access.ReasonAccountDeactivated) {
		t.Fatalf("期望 401 account_deactivated，实际为 %d %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证管理员策略拒绝作者，角色以数据库为准。
func TestGuard_AdminOnly(t *testing.T) {
	r, gdb, codec := newGuardRouter(t)
	author := testutils.CreateUser(t, gdb, "alice", consts.RoleAuthor)
	admin := testutils.CreateUser(t, gdb, "root", consts.RoleAdmin)

	if w := get(r, "/admin", tokenFor(t, codec, author.ID)); w.Code != http.StatusForbidden {
		t.Fatalf("期望作者访问管理员接口返回 403，实际为 %d", w.Code)
	}
	if w := get(r, "/admin", tokenFor(t, codec, admin.ID)); w.Code != http.StatusOK {
		t.Fatalf("期望管理员返回 200，实际为 %d", w.Code)
	}

	// 降级后旧令牌立即失去管理员权限
	gdb.Model(&model.User{}).Where("id = ?", admin.ID).Update("role", consts.RoleAuthor)
	if w := get(r, "/admin", tokenFor(t, codec, admin.ID)); w.Code != http.StatusForbidden {
		t.Fatalf("期望降级后返回 403，实际为 %d", w.Code)
	}
}

// 测试内容：验证可选认证下无效令牌按匿名处理，并通过响应头给出原因。
func TestGuard_OptionalSignalsAuthError(t *testing.T) {
	r, gdb, codec := newGuardRouter(t)
	user := testutils.CreateUser(t, gdb, "alice", consts.RoleAuthor)

	w := get(r, "/optional", "")
	if w.Code != http.StatusOK || w.Body.String() != "anonymous:" || w.Header().Get(AuthErrorHeader) != "" {
		t.Fatalf("期望无令牌匿名访问，实际为 %d %s", w.Code, w.Body.String())
	}

	w = get(r, "/optional", "Bearer not-a-jwt")
	if w.Code != http.StatusOK || w.Header().Get(AuthErrorHeader) == "" || !strings.HasPrefix(w.Body.String(), "anonymous:") {
		t.Fatalf("期望无效令牌按匿名处理并给出原因，实际为 %d %s", w.Code, w.Body.String())
	}

	w = get(r, "/optional", tokenFor(t, codec, user.ID))
	if w.Code != http.StatusOK || w.Body.String() != "alice" {
		t.Fatalf("期望有效令牌识别为 alice，实际为 %d %s", w.Code, w.Body.String())
	}
}
