package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nsxzhou1114/news-admin/internal/model"
	"gorm.io/gorm"
)

// ArticleRepository 文章主表仓储
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository 创建文章主表仓储
func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// FindActive 按ID查询正常状态的文章，不存在时返回 nil
func (r *ArticleRepository) FindActive(ctx context.Context, id uint) (*model.Article, error) {
	var article model.Article
	err := conn(ctx, r.db).
		Where("news_id = ? AND status = ?", id, model.StatusActive).
		Take(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	return &article, nil
}

// FindPage 分页查询正常状态的文章
func (r *ArticleRepository) FindPage(ctx context.Context, q model.ArticleQuery) ([]model.Article, int64, error) {
	query := conn(ctx, r.db).Model(&model.Article{}).Where("status = ?", model.StatusActive)
	query = applyArticleFilters(query, q)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计文章数量失败: %w", err)
	}

	var articles []model.Article
	offset := (q.Page - 1) * q.PageSize
	if err := query.Order("list_order ASC").Order("news_id DESC").
		Offset(offset).Limit(q.PageSize).
		Find(&articles).Error; err != nil {
		return nil, 0, fmt.Errorf("查询文章列表失败: %w", err)
	}
	return articles, total, nil
}

// applyArticleFilters 应用列表过滤条件
func applyArticleFilters(query *gorm.DB, q model.ArticleQuery) *gorm.DB {
	if q.Title != "" {
		query = query.Where("title LIKE ? ESCAPE ?", "%"+escapeLike(q.Title)+"%", `\`)
	}
	if q.AdminID != model.AdminFilterNone {
		query = query.Where("created_by = ?", q.AdminID)
	}
	if q.StartTime != nil {
		query = query.Where("created_time >= ?", *q.StartTime)
	}
	if q.EndTime != nil {
		query = query.Where("created_time <= ?", *q.EndTime)
	}
	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Insert 新增文章，返回新ID
func (r *ArticleRepository) Insert(ctx context.Context, article *model.Article) (uint, error) {
	if err := conn(ctx, r.db).Create(article).Error; err != nil {
		return 0, fmt.Errorf("新增文章失败: %w", err)
	}
	return article.ID, nil
}

// Update 按ID更新文章字段，activeOnly 为 true 时只更新正常状态的记录，返回受影响行数
func (r *ArticleRepository) Update(ctx context.Context, id uint, activeOnly bool, fields map[string]interface{}) (int64, error) {
	query := conn(ctx, r.db).Model(&model.Article{}).Where("news_id = ?", id)
	if activeOnly {
		query = query.Where("status = ?", model.StatusActive)
	}
	result := query.Updates(fields)
	if result.Error != nil {
		return 0, fmt.Errorf("更新文章失败: %w", result.Error)
	}
	return result.RowsAffected, nil
}
