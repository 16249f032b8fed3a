package restapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"subflix/pkg/errno"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 请求成功响应
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Code:    errno.OK.Code,
		Message: errno.OK.Message,
		Data:    data,
	})
}

// Failed 请求失败响应，根据错误码映射HTTP状态
func Failed(ctx *gin.Context, err error) {
	code := errno.CodeOf(err)
	ctx.JSON(httpStatus(code), Response{
		Code:    code,
		Message: err.Error(),
	})
}

// httpStatus 业务错误码默认返回400，系统错误返回500
func httpStatus(code int) int {
	switch {
	case code == errno.OK.Code:
		return http.StatusOK
	case code == errno.ErrUnauthorized.Code:
		return http.StatusUnauthorized
	case code == errno.ErrNotFound.Code,
		code == errno.ErrVideoFileNotFound.Code,
		code == errno.ErrJobNotFound.Code:
		return http.StatusNotFound
	case code >= 500 && code < 600:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
