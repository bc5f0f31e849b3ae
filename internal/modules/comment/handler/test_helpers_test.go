package handler

import (
	"testing"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/model"
	modulerepo "os-blog-server/internal/modules/comment/repo"
	commentservice "os-blog-server/internal/modules/comment/service"
	settingsrepo "os-blog-server/internal/modules/settings/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// rejectingCaptcha 只接受固定答案。
type rejectingCaptcha struct {
	answer string
}

func (r rejectingCaptcha) VerifyCaptcha(_ string, answer string) error {
	if answer != r.answer {
		return platformservice.NewFieldValidationError("验证码错误", map[string]string{"captcha_answer": "验证码错误"})
	}
	return nil
}

func setupTestDB(t *testing.T, captcha CaptchaVerifier) (*gorm.DB, *Handler) {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	appService.ClearCache()
	h := New(commentservice.New(appService, modulerepo.NewCommentRepository(gdb)), captcha)
	return gdb, h
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/comments/post/:postId", h.ListForPost)
	r.POST("/comments/:postId", h.Submit)
	r.PATCH("/comments/:id/approve", h.Approve)
	return r
}

func publishedPost(t *testing.T, gdb *gorm.DB) *model.Post {
	t.Helper()
	author := testutils.CreateUser(t, gdb, "writer", consts.RoleAuthor)
	return testutils.CreatePost(t, gdb, author.ID, "open-post", true)
}
