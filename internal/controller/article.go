package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/internal/dto"
	"github.com/nsxzhou1114/news-admin/internal/logger"
	"github.com/nsxzhou1114/news-admin/internal/model"
	"github.com/nsxzhou1114/news-admin/internal/service"
	"github.com/nsxzhou1114/news-admin/pkg/errcode"
	"github.com/nsxzhou1114/news-admin/pkg/response"
	"go.uber.org/zap"
)

// ArticleApi 文章管理控制器
type ArticleApi struct {
	logger         *zap.SugaredLogger
	articleService *service.ArticleService
}

// NewArticleApi 创建文章控制器实例
func NewArticleApi(articleService *service.ArticleService) *ArticleApi {
	return &ArticleApi{
		logger:         logger.GetSugaredLogger(),
		articleService: articleService,
	}
}

// List 文章列表
func (api *ArticleApi) List(c *gin.Context) {
	var req dto.ArticleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	page, err := api.articleService.List(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessPage(c, "获取成功", dto.NewArticleItems(page.List), page.Page, page.PageSize, page.Total)
}

// Detail 文章详情，with_content=1 时返回正文
func (api *ArticleApi) Detail(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}
	withContent := c.Query("with_content") == "1" || c.Query("with_content") == "true"

	article, data, err := api.articleService.Detail(c.Request.Context(), id, withContent)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if article == nil {
		response.FromError(c, errcode.New(errcode.NotFound, "文章不存在或已经删除"))
		return
	}
	response.Success(c, "获取成功", dto.NewArticleDetailResponse(article, data))
}

// bindSaveRequest 绑定新增/编辑请求，显示状态缺省为显示
func bindSaveRequest(c *gin.Context) (*dto.ArticleSaveRequest, bool) {
	var req dto.ArticleSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return nil, false
	}
	if req.Display == nil {
		display := model.DisplayShown
		req.Display = &display
	}
	return &req, true
}

// Create 添加文章
func (api *ArticleApi) Create(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	req, ok := bindSaveRequest(c)
	if !ok {
		return
	}

	added, err := api.articleService.Add(c.Request.Context(), adminID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !added {
		response.InternalServerError(c, "添加文章失败", nil)
		return
	}
	response.Success(c, "添加成功", nil)
}

// Update 编辑文章
func (api *ArticleApi) Update(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parseArticleID(c)
	if !ok {
		return
	}
	req, ok := bindSaveRequest(c)
	if !ok {
		return
	}

	updated, err := api.articleService.Edit(c.Request.Context(), adminID, id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !updated {
		api.logger.Warnf("文章编辑未生效: news_id=%d", id)
		response.FromError(c, errcode.New(errcode.NotFound, "文章不存在或已经删除"))
		return
	}
	response.Success(c, "编辑成功", nil)
}

// Delete 删除文章
func (api *ArticleApi) Delete(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	if _, err := api.articleService.Delete(c.Request.Context(), adminID, id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "删除成功", nil)
}

// Sort 文章排序
func (api *ArticleApi) Sort(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req dto.ArticleSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := api.articleService.Sort(c.Request.Context(), adminID, req.ListOrders); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "排序成功", nil)
}
