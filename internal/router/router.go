package router

import (
	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/internal/controller"
	"github.com/nsxzhou1114/news-admin/internal/logger"
	"github.com/nsxzhou1114/news-admin/internal/metrics"
	"github.com/nsxzhou1114/news-admin/internal/middleware"
	"github.com/nsxzhou1114/news-admin/internal/service"
	"github.com/nsxzhou1114/news-admin/pkg/auth"
	"github.com/nsxzhou1114/news-admin/pkg/idgen"
)

// Deps 路由依赖
type Deps struct {
	ArticleService *service.ArticleService
	AdminService   *service.AdminService
	Tokens         *auth.TokenManager
	Metrics        *metrics.Metrics // nil 时不暴露指标
	MetricsPath    string
	IDGen          *idgen.Generator // nil 时不生成请求ID
}

// New 创建带全局中间件的路由
func New(deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	if deps.IDGen != nil {
		r.Use(middleware.RequestID(deps.IDGen))
	}
	r.Use(logger.GinLogger())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	Setup(r, deps)
	return r
}

// Setup 设置API路由
func Setup(r *gin.Engine, deps Deps) {
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	// API 路由组
	api := r.Group("/api")

	// 管理后台路由
	admin := api.Group("/admin")
	setupAdminRoutes(admin, deps)
	setupArticleRoutes(admin, deps)
}

// setupAdminRoutes 设置管理员相关路由
func setupAdminRoutes(admin *gin.RouterGroup, deps Deps) {
	adminApi := controller.NewAdminApi(deps.AdminService)

	// 登录
	admin.POST("/login", adminApi.Login)
	// 登出
	admin.POST("/logout", middleware.AdminAuth(deps.Tokens), adminApi.Logout)
}

// setupArticleRoutes 设置文章管理路由
func setupArticleRoutes(admin *gin.RouterGroup, deps Deps) {
	articleApi := controller.NewArticleApi(deps.ArticleService)

	articleRoutes := admin.Group("/articles", middleware.AdminAuth(deps.Tokens))
	{
		// 文章列表
		articleRoutes.GET("", articleApi.List)
		// 文章详情
		articleRoutes.GET("/:id", articleApi.Detail)
		// 添加文章
		articleRoutes.POST("", articleApi.Create)
		// 文章排序
		articleRoutes.POST("/sort", articleApi.Sort)
		// 编辑文章
		articleRoutes.PUT("/:id", articleApi.Update)
		// 删除文章
		articleRoutes.DELETE("/:id", articleApi.Delete)
	}
}
