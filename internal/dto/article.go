package dto

import (
	"time"

	"github.com/nsxzhou1114/news-admin/internal/model"
	"github.com/nsxzhou1114/news-admin/pkg/validate"
)

// ArticleListRequest 文章列表查询请求，字段顺序即校验顺序
type ArticleListRequest struct {
	StartTime string `form:"start_time" validate:"omitempty,datetime=2006-01-02 15:04:05" label:"开始时间"`
	EndTime   string `form:"end_time" validate:"omitempty,datetime=2006-01-02 15:04:05" label:"结束时间"`
	Title     string `form:"title" validate:"omitempty,max=100" label:"标题查询条件"`
	AdminName string `form:"admin_name"` // 管理员账号，精确匹配
	Page      int    `form:"page"`       // 页码，默认1
	PageSize  int    `form:"page_size"`  // 每页条数，默认20
}

// ArticleSaveRequest 新增/编辑文章请求，字段顺序即校验顺序
type ArticleSaveRequest struct {
	CategoryID uint   `json:"cat_id"`
	Title      string `json:"title" validate:"required,min=1,max=80" label:"标题"`
	Intro      string `json:"intro" validate:"required,min=20,max=500" label:"文章简介"`
	Keywords   string `json:"keywords" validate:"required,min=1,max=100" label:"文章关键词"`
	Source     string `json:"source" validate:"required,min=1,max=50" label:"文章来源"`
	ImageURL   string `json:"image_url" validate:"omitempty,min=1,max=100" label:"文章图片"`
	Content    string `json:"content" validate:"required,min=10,max=50000" label:"文章内容"`
	Display    *int   `json:"display" validate:"required" label:"显示状态"` // 1显示 0隐藏
}

// ArticleSortRequest 文章排序请求，文章ID->排序值
type ArticleSortRequest struct {
	ListOrders map[uint]int `json:"listorders"`
}

// ArticleItem 文章列表项，不含正文
type ArticleItem struct {
	ID           uint   `json:"news_id"`
	Title        string `json:"title"`
	Intro        string `json:"intro"`
	Keywords     string `json:"keywords"`
	Source       string `json:"source"`
	ImageURL     string `json:"image_url"`
	CategoryID   uint   `json:"cat_id"`
	Display      int    `json:"display"`
	ListOrder    int    `json:"list_order"`
	CreatedBy    uint   `json:"created_by"`
	CreatedTime  string `json:"created_time"`
	ModifiedBy   uint   `json:"modified_by"`
	ModifiedTime string `json:"modified_time"`
}

// ArticleDetailResponse 文章详情，with_content=1 时包含正文
type ArticleDetailResponse struct {
	ArticleItem
	Content *string `json:"content,omitempty"`
}

// NewArticleItem 由模型构建列表项
func NewArticleItem(a *model.Article) ArticleItem {
	return ArticleItem{
		ID:           a.ID,
		Title:        a.Title,
		Intro:        a.Intro,
		Keywords:     a.Keywords,
		Source:       a.Source,
		ImageURL:     a.ImageURL,
		CategoryID:   a.CategoryID,
		Display:      a.Display,
		ListOrder:    a.ListOrder,
		CreatedBy:    a.CreatedBy,
		CreatedTime:  formatTime(&a.CreatedTime),
		ModifiedBy:   a.ModifiedBy,
		ModifiedTime: formatTime(a.ModifiedTime),
	}
}

// NewArticleItems 批量构建列表项
func NewArticleItems(list []model.Article) []ArticleItem {
	items := make([]ArticleItem, 0, len(list))
	for i := range list {
		items = append(items, NewArticleItem(&list[i]))
	}
	return items
}

// NewArticleDetailResponse 构建详情响应，data 为 nil 时不含正文
func NewArticleDetailResponse(a *model.Article, data *model.ArticleData) *ArticleDetailResponse {
	resp := &ArticleDetailResponse{ArticleItem: NewArticleItem(a)}
	if data != nil {
		content := data.Content
		resp.Content = &content
	}
	return resp
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(validate.DateTimeLayout)
}
