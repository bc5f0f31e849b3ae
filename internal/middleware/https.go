package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ForceHTTPSMiddleware 开启后把明文请求重定向到 HTTPS，并下发 HSTS。
// 反向代理终止 TLS 时依据 X-Forwarded-Proto 判断。
func ForceHTTPSMiddleware(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		if isHTTPS(c.Request) {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			c.Next()
			return
		}

		target := "https://" + c.Request.Host + c.Request.URL.RequestURI()
		// 308 保留请求方法与请求体
		c.Redirect(http.StatusPermanentRedirect, target)
		c.Abort()
	}
}

func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
