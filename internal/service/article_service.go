package service

import (
	"context"
	"sort"
	"time"

	"github.com/nsxzhou1114/news-admin/internal/dto"
	"github.com/nsxzhou1114/news-admin/internal/logger"
	"github.com/nsxzhou1114/news-admin/internal/metrics"
	"github.com/nsxzhou1114/news-admin/internal/model"
	"github.com/nsxzhou1114/news-admin/pkg/errcode"
	"github.com/nsxzhou1114/news-admin/pkg/validate"
	"go.uber.org/zap"
)

const defaultPageSize = 20

// 文章操作名，用作监控标签
const (
	opList   = "list"
	opDetail = "detail"
	opAdd    = "add"
	opEdit   = "edit"
	opDelete = "delete"
	opSort   = "sort"
)

// ArticleDeps 文章服务依赖
type ArticleDeps struct {
	Articles        ArticleStore
	Bodies          ArticleBodyStore
	Categories      CategoryStore
	Admins          AdminStore
	Tx              Transactor
	Filter          *ContentFilter
	Metrics         *metrics.Metrics
	Clock           Clock
	Logger          *zap.SugaredLogger
	DefaultPageSize int
}

// ArticleService 文章管理服务
type ArticleService struct {
	articles        ArticleStore
	bodies          ArticleBodyStore
	categories      CategoryStore
	admins          AdminStore
	tx              Transactor
	filter          *ContentFilter
	metrics         *metrics.Metrics
	now             Clock
	log             *zap.SugaredLogger
	defaultPageSize int
}

// NewArticleService 创建文章服务实例
func NewArticleService(deps ArticleDeps) *ArticleService {
	s := &ArticleService{
		articles:        deps.Articles,
		bodies:          deps.Bodies,
		categories:      deps.Categories,
		admins:          deps.Admins,
		tx:              deps.Tx,
		filter:          deps.Filter,
		metrics:         deps.Metrics,
		now:             deps.Clock,
		log:             deps.Logger,
		defaultPageSize: deps.DefaultPageSize,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = logger.GetSugaredLogger()
	}
	if s.defaultPageSize <= 0 {
		s.defaultPageSize = defaultPageSize
	}
	return s
}

// ArticlePage 文章分页结果
type ArticlePage struct {
	List     []model.Article
	Total    int64
	Page     int
	PageSize int
}

// List 文章列表
func (s *ArticleService) List(ctx context.Context, req *dto.ArticleListRequest) (page *ArticlePage, err error) {
	defer func() { s.metrics.ArticleOp(opList, err) }()

	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	q := model.ArticleQuery{
		Title:    req.Title,
		AdminID:  model.AdminFilterNone,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = s.defaultPageSize
	}
	if req.StartTime != "" {
		t, _ := time.ParseInLocation(validate.DateTimeLayout, req.StartTime, time.Local)
		q.StartTime = &t
	}
	if req.EndTime != "" {
		t, _ := time.ParseInLocation(validate.DateTimeLayout, req.EndTime, time.Local)
		q.EndTime = &t
	}

	if req.AdminName != "" {
		admin, err := s.admins.FindByUsername(ctx, req.AdminName)
		if err != nil {
			return nil, err
		}
		if admin != nil {
			q.AdminID = int64(admin.ID)
		} else {
			q.AdminID = model.AdminFilterNoMatch
		}
	}

	list, total, err := s.articles.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}
	return &ArticlePage{List: list, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
}

// Detail 文章详情，文章不存在或已删除时返回 nil
// withBody 为 true 时同时返回正文，正文缺失视为数据异常
func (s *ArticleService) Detail(ctx context.Context, id uint, withBody bool) (article *model.Article, data *model.ArticleData, err error) {
	defer func() { s.metrics.ArticleOp(opDetail, err) }()

	article, err = s.articles.FindActive(ctx, id)
	if err != nil || article == nil {
		return nil, nil, err
	}
	if !withBody {
		return article, nil, nil
	}

	data, err = s.bodies.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if data == nil {
		s.log.Errorf("文章正文缺失: news_id=%d", id)
		return nil, nil, errcode.New(errcode.DataIntegrity, "文章数据异常")
	}
	return article, data, nil
}

// Add 添加文章
func (s *ArticleService) Add(ctx context.Context, adminID uint, req *dto.ArticleSaveRequest) (ok bool, err error) {
	defer func() { s.metrics.ArticleOp(opAdd, err) }()

	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return false, err
	}
	content, err := s.checkContent(req)
	if err != nil {
		return false, err
	}

	article := &model.Article{
		Title:       req.Title,
		Intro:       req.Intro,
		Keywords:    req.Keywords,
		Source:      req.Source,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Display:     *req.Display,
		Status:      model.StatusActive,
		CreatedBy:   adminID,
		CreatedTime: s.now(),
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		id, err := s.articles.Insert(ctx, article)
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}
		if err := s.bodies.Insert(ctx, &model.ArticleData{ArticleID: id, Content: content}); err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		s.log.Errorf("添加文章失败: %v", err)
		return false, err
	}
	if ok {
		s.log.Infof("添加文章成功: news_id=%d admin_id=%d", article.ID, adminID)
	}
	return ok, nil
}

// Edit 编辑文章
func (s *ArticleService) Edit(ctx context.Context, adminID, articleID uint, req *dto.ArticleSaveRequest) (ok bool, err error) {
	defer func() { s.metrics.ArticleOp(opEdit, err) }()

	if err := s.checkArticle(ctx, articleID); err != nil {
		return false, err
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return false, err
	}
	content, err := s.checkContent(req)
	if err != nil {
		return false, err
	}

	fields := map[string]interface{}{
		"title":         req.Title,
		"intro":         req.Intro,
		"keywords":      req.Keywords,
		"source":        req.Source,
		"image_url":     req.ImageURL,
		"display":       *req.Display,
		"cat_id":        req.CategoryID,
		"modified_by":   adminID,
		"modified_time": s.now(),
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		rows, err := s.articles.Update(ctx, articleID, true, fields)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		if _, err := s.bodies.UpdateContent(ctx, articleID, content); err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		s.log.Errorf("编辑文章失败: news_id=%d, %v", articleID, err)
		return false, err
	}
	return ok, nil
}

// Delete 删除文章（软删除）
// 更新条件同时要求文章处于正常状态，并发删除时后到的请求返回文章不存在，
// 不会重复写入 modified_by/modified_time
func (s *ArticleService) Delete(ctx context.Context, adminID, articleID uint) (ok bool, err error) {
	defer func() { s.metrics.ArticleOp(opDelete, err) }()

	if err := s.checkArticle(ctx, articleID); err != nil {
		return false, err
	}

	rows, err := s.articles.Update(ctx, articleID, true, map[string]interface{}{
		"status":        model.StatusDeleted,
		"modified_by":   adminID,
		"modified_time": s.now(),
	})
	if err != nil {
		return false, err
	}
	// 并发删除时另一请求已生效
	if rows == 0 {
		return false, errArticleNotFound()
	}
	s.log.Infof("删除文章成功: news_id=%d admin_id=%d", articleID, adminID)
	return true, nil
}

// Sort 文章排序，orderings 为文章ID->排序值
// 已删除或不存在的文章静默跳过
func (s *ArticleService) Sort(ctx context.Context, adminID uint, orderings map[uint]int) (ok bool, err error) {
	defer func() { s.metrics.ArticleOp(opSort, err) }()

	if len(orderings) == 0 {
		return false, errcode.New(errcode.Validation, "请选择要排序的文章")
	}

	ids := make([]uint, 0, len(orderings))
	for id := range orderings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	now := s.now()
	for _, id := range ids {
		if _, err := s.articles.Update(ctx, id, true, map[string]interface{}{
			"list_order":    orderings[id],
			"modified_by":   adminID,
			"modified_time": now,
		}); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (s *ArticleService) checkArticle(ctx context.Context, id uint) error {
	article, err := s.articles.FindActive(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return errArticleNotFound()
	}
	return nil
}

func (s *ArticleService) checkCategory(ctx context.Context, id uint) error {
	category, err := s.categories.FindActive(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return errcode.New(errcode.NotFound, "分类不存在或已经删除")
	}
	return nil
}

// checkContent 字段规则校验、敏感词检测，返回清理后的正文
func (s *ArticleService) checkContent(req *dto.ArticleSaveRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", err
	}
	if err := s.filter.Check(req); err != nil {
		return "", err
	}
	content := s.filter.Sanitize(req.Content)
	if content != req.Content {
		// 清理后的正文仍需满足长度规则
		sanitized := *req
		sanitized.Content = content
		if err := validate.Struct(&sanitized); err != nil {
			return "", err
		}
	}
	return content, nil
}

func errArticleNotFound() error {
	return errcode.New(errcode.NotFound, "文章不存在或已经删除")
}
