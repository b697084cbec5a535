package service

import (
	"context"
	"time"

	"github.com/nsxzhou1114/news-admin/internal/model"
)

// ArticleStore 文章主表存储
type ArticleStore interface {
	FindActive(ctx context.Context, id uint) (*model.Article, error)
	FindPage(ctx context.Context, q model.ArticleQuery) ([]model.Article, int64, error)
	Insert(ctx context.Context, article *model.Article) (uint, error)
	Update(ctx context.Context, id uint, activeOnly bool, fields map[string]interface{}) (int64, error)
}

// ArticleBodyStore 文章正文存储
type ArticleBodyStore interface {
	Find(ctx context.Context, articleID uint) (*model.ArticleData, error)
	Insert(ctx context.Context, data *model.ArticleData) error
	UpdateContent(ctx context.Context, articleID uint, content string) (int64, error)
}

// CategoryStore 分类存储
type CategoryStore interface {
	FindActive(ctx context.Context, id uint) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
}

// AdminStore 管理员存储
type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	Create(ctx context.Context, admin *model.Admin) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}

// Transactor 在同一事务中执行多次写入
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock 当前时间
type Clock func() time.Time
