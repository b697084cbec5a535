package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/nsxzhou1114/news-admin/internal/model"
	"gorm.io/gorm"
)

// ArticleDataRepository 文章正文仓储（MySQL）
type ArticleDataRepository struct {
	db *gorm.DB
}

// NewArticleDataRepository 创建正文仓储
func NewArticleDataRepository(db *gorm.DB) *ArticleDataRepository {
	return &ArticleDataRepository{db: db}
}

// Find 按文章ID查询正文，不存在时返回 nil
func (r *ArticleDataRepository) Find(ctx context.Context, articleID uint) (*model.ArticleData, error) {
	var data model.ArticleData
	err := conn(ctx, r.db).Where("news_id = ?", articleID).Take(&data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询文章正文失败: %w", err)
	}
	return &data, nil
}

// Insert 新增正文
func (r *ArticleDataRepository) Insert(ctx context.Context, data *model.ArticleData) error {
	if err := conn(ctx, r.db).Create(data).Error; err != nil {
		return fmt.Errorf("新增文章正文失败: %w", err)
	}
	return nil
}

// UpdateContent 更新正文内容，返回受影响行数
func (r *ArticleDataRepository) UpdateContent(ctx context.Context, articleID uint, content string) (int64, error) {
	result := conn(ctx, r.db).Model(&model.ArticleData{}).
		Where("news_id = ?", articleID).
		Update("content", content)
	if result.Error != nil {
		return 0, fmt.Errorf("更新文章正文失败: %w", result.Error)
	}
	return result.RowsAffected, nil
}
