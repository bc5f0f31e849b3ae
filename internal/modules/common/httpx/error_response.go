package httpx

import (
	"net/http"

	"os-blog-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
// Non-service errors become 500 with the fallback message.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	serviceErr, ok := service.AsServiceError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fallbackMessage,
			"code":  service.ErrorCodeInternal,
		})
		return
	}

	body := gin.H{
		"error": serviceErr.Message,
		"code":  serviceErr.Code,
	}
	if serviceErr.Reason != "" {
		body["reason"] = serviceErr.Reason
	}
	if len(serviceErr.Fields) > 0 {
		body["fields"] = serviceErr.Fields
	}
	c.JSON(StatusOf(serviceErr.Code), body)
}

// AbortWithServiceError 写入错误响应并中止后续处理，供中间件使用。
func AbortWithServiceError(c *gin.Context, err error, fallbackMessage string) {
	WriteServiceError(c, err, fallbackMessage)
	c.Abort()
}

// StatusOf 把业务错误码映射为 HTTP 状态码。
func StatusOf(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeConflict:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	case service.ErrorCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest 写入请求格式错误的响应。
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message, "code": service.ErrorCodeValidation})
}
