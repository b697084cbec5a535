package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/internal/middleware"
	"github.com/nsxzhou1114/news-admin/pkg/errcode"
	"github.com/nsxzhou1114/news-admin/pkg/response"
)

// getAdminID 从上下文中获取管理员ID，未登录时写入401响应
func getAdminID(c *gin.Context) (uint, bool) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Unauthorized(c, "请先登录", nil)
		return 0, false
	}
	return adminID, true
}

// parseArticleID 解析路径中的文章ID，非法时写入400响应
func parseArticleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.FromError(c, errcode.New(errcode.Validation, "无效的文章ID"))
		return 0, false
	}
	return uint(id), true
}

func badRequest(c *gin.Context, err error) {
	c.Error(err)
	response.FromError(c, errcode.New(errcode.Validation, "请求参数格式错误"))
}
