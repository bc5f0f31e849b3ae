package handler

import (
	"net/http"

	"os-blog-server/internal/modules/access"
	categoryservice "os-blog-server/internal/modules/category/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	categoryService *categoryservice.Service
}

func New(categoryService *categoryservice.Service) *Handler {
	return &Handler{categoryService: categoryService}
}

func currentPrincipal(c *gin.Context) (*access.Principal, bool) {
	principal, ok := access.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录", "code": "unauthorized"})
		return nil, false
	}
	return principal, true
}
