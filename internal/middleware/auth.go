package middleware

import (
	"strings"

	"os-blog-server/internal/modules/access"
	"os-blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// AuthErrorHeader 可选认证下，令牌被忽略时返回失败原因。
const AuthErrorHeader = "X-Auth-Error"

// malformedHeaderToken 占位令牌，保证格式错误的 Authorization 头落入 malformed 分支。
const malformedHeaderToken = "\x00malformed"

// Guard 按路由声明的 Policy 执行访问判定链，成功后把 Principal 写入上下文。
func Guard(chain *access.Chain, policy access.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := chain.Evaluate(bearerToken(c), policy)
		if err != nil {
			if policy.Optional {
				reason := access.ReasonOf(err)
				if reason == "" {
					// 非认证类错误（例如数据库异常）不能被当作匿名访问吞掉
					httpx.AbortWithServiceError(c, err, "认证失败")
					return
				}
				access.SetAuthError(c, reason)
				c.Header(AuthErrorHeader, reason)
				c.Next()
				return
			}
			httpx.AbortWithServiceError(c, err, "认证失败")
			return
		}

		if principal != nil {
			access.SetPrincipal(c, principal)
		}
		c.Next()
	}
}

// bearerToken 从 "Authorization: Bearer <token>" 中取出令牌；没有该头时返回空串。
func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return malformedHeaderToken
	}
	return strings.TrimSpace(parts[1])
}
