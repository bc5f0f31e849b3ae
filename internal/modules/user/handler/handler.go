package handler

import (
	"net/http"

	"os-blog-server/internal/modules/access"
	userservice "os-blog-server/internal/modules/user/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	userService *userservice.Service
}

func New(userService *userservice.Service) *Handler {
	return &Handler{userService: userService}
}

func currentPrincipal(c *gin.Context) (*access.Principal, bool) {
	p, ok := access.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问"})
		return nil, false
	}
	return p, true
}
