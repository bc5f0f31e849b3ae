package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"os-blog-server/internal/config"
	"os-blog-server/internal/middleware"
	"os-blog-server/internal/modules/access"
	authservice "os-blog-server/internal/modules/auth/service"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	userrepo "os-blog-server/internal/modules/user/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"
	"os-blog-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testService *authservice.Service
	testHandler *Handler
	testChain   *access.Chain
)

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	userStore := userrepo.NewUserRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	tokens := utils.NewTokenCodec(config.JWTConfig{Secret: "auth_handler_secret", ExpirationHours: 1})
	testService = authservice.New(appService, userStore, tokens, utils.NewCaptcha())
	testHandler = New(testService)
	testChain = access.NewChain(tokens, userStore)
	testService.ClearCache()
	return gdb
}

// newTestRouter 组装登录、Me 以及一个严格/宽松策略的探针路由。
func newTestRouter() *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", testHandler.Login)
	r.GET("/auth/me", middleware.Guard(testChain, access.Full), testHandler.Me)
	r.GET("/auth/captcha", testHandler.GetCaptcha)
	r.PATCH("/probe/permissive", middleware.Guard(testChain, access.AllowTemporaryPassword), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doJSON(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
