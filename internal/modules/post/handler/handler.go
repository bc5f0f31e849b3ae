package handler

import (
	"net/http"

	"os-blog-server/internal/modules/access"
	postservice "os-blog-server/internal/modules/post/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	postService *postservice.Service
}

func New(postService *postservice.Service) *Handler {
	return &Handler{postService: postService}
}

func currentPrincipal(c *gin.Context) (*access.Principal, bool) {
	principal, ok := access.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录", "code": "unauthorized"})
		return nil, false
	}
	return principal, true
}
