package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/pkg/errcode"
)

// Response 统一响应结构
type Response struct {
	Code    int    `json:"code"`           // 状态码
	Message string `json:"message"`        // 响应消息
	Data    any    `json:"data"`           // 响应数据
	Meta    any    `json:"meta,omitempty"` // 元数据，如分页信息
}

// PageMeta 分页元数据
type PageMeta struct {
	Page  int   `json:"page"`  // 当前页码
	Size  int   `json:"size"`  // 每页大小
	Total int64 `json:"total"` // 总记录数
}

// NewPageMeta 创建分页元数据
func NewPageMeta(page, size int, total int64) PageMeta {
	return PageMeta{
		Page:  page,
		Size:  size,
		Total: total,
	}
}

// Success 返回成功响应
func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// SuccessPage 返回分页成功响应
func SuccessPage(c *gin.Context, message string, data any, page, size int, total int64) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
		Meta: PageMeta{
			Page:  page,
			Size:  size,
			Total: total,
		},
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string, err error) {
	// 记录详细错误信息，但不向客户端暴露
	if err != nil {
		c.Error(err)
	}

	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// Unauthorized 401错误响应
func Unauthorized(c *gin.Context, message string, err error) {
	Error(c, http.StatusUnauthorized, message, err)
}

// InternalServerError 500错误响应
func InternalServerError(c *gin.Context, message string, err error) {
	Error(c, http.StatusInternalServerError, message, err)
}

// HTTPStatus 业务错误码对应的HTTP状态码
func HTTPStatus(code errcode.Code) int {
	switch code {
	case errcode.Validation:
		return http.StatusBadRequest
	case errcode.Unauthorized:
		return http.StatusUnauthorized
	case errcode.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromError 按业务错误返回响应，响应体中的 code 为业务错误码
// 非业务错误只返回通用消息
func FromError(c *gin.Context, err error) {
	code := errcode.CodeOf(err)
	c.Error(err)
	c.JSON(HTTPStatus(code), Response{
		Code:    int(code),
		Message: errcode.MessageOf(err),
		Data:    nil,
	})
}
