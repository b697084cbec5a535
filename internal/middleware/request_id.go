package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/pkg/idgen"
)

// HeaderRequestID 请求ID响应头
const HeaderRequestID = "X-Request-ID"

// RequestID 为每个请求分配ID，沿用客户端传入的值
func RequestID(gen *idgen.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = gen.NextString()
		}
		c.Set("requestID", id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
