package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/internal/logger"
	"github.com/nsxzhou1114/news-admin/pkg/auth"
	"github.com/nsxzhou1114/news-admin/pkg/response"
)

const (
	ctxAdminID  = "adminID"
	ctxUsername = "adminUsername"
	ctxClaims   = "adminClaims"
)

// AdminAuth 管理员认证中间件
func AdminAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从请求头获取token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "请先登录", nil)
			c.Abort()
			return
		}

		// 检查格式
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Unauthorized(c, "Authorization格式错误", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			logger.Warnf("管理员令牌校验失败: %v", err)
			msg := "无效的令牌"
			if errors.Is(err, auth.ErrRevokedToken) {
				msg = "令牌已失效"
			}
			response.Unauthorized(c, msg, err)
			c.Abort()
			return
		}

		c.Set(ctxAdminID, claims.AdminID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

// GetAdminID 从上下文中获取管理员ID
func GetAdminID(c *gin.Context) (uint, bool) {
	adminID, exists := c.Get(ctxAdminID)
	if !exists {
		return 0, false
	}
	id, ok := adminID.(uint)
	return id, ok
}

// GetClaims 从上下文中获取令牌声明
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(ctxClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
