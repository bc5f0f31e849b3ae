package handler

import (
	"net/http"

	"os-blog-server/internal/modules/access"
	fileservice "os-blog-server/internal/modules/file/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	fileService *fileservice.Service
}

func New(fileService *fileservice.Service) *Handler {
	return &Handler{fileService: fileService}
}

func currentPrincipal(c *gin.Context) (*access.Principal, bool) {
	principal, ok := access.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录", "code": "unauthorized"})
		return nil, false
	}
	return principal, true
}
