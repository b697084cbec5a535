package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/internal/dto"
	"github.com/nsxzhou1114/news-admin/internal/logger"
	"github.com/nsxzhou1114/news-admin/internal/middleware"
	"github.com/nsxzhou1114/news-admin/internal/service"
	"github.com/nsxzhou1114/news-admin/pkg/response"
	"go.uber.org/zap"
)

// AdminApi 管理员控制器
type AdminApi struct {
	logger       *zap.SugaredLogger
	adminService *service.AdminService
}

// NewAdminApi 创建管理员控制器实例
func NewAdminApi(adminService *service.AdminService) *AdminApi {
	return &AdminApi{
		logger:       logger.GetSugaredLogger(),
		adminService: adminService,
	}
}

// Login 管理员登录
func (api *AdminApi) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := api.adminService.Login(c.Request.Context(), &req)
	if err != nil {
		api.logger.Infof("管理员登录失败: username=%s ip=%s", req.Username, c.ClientIP())
		response.FromError(c, err)
		return
	}
	response.Success(c, "登录成功", resp)
}

// Logout 管理员登出
func (api *AdminApi) Logout(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		response.Unauthorized(c, "请先登录", nil)
		return
	}
	api.adminService.Logout(claims)
	response.Success(c, "登出成功", nil)
}
