package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/nsxzhou1114/news-admin/internal/model"
	"gorm.io/gorm"
)

// CategoryRepository 分类仓储
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindActive 查询正常状态的分类，不存在或已删除时返回 nil
func (r *CategoryRepository) FindActive(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := conn(ctx, r.db).Where("id = ? AND status = ?", id, model.StatusActive).Take(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	return &category, nil
}

// Create 创建分类
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if category.Status == 0 {
		category.Status = model.StatusActive
	}
	if err := conn(ctx, r.db).Create(category).Error; err != nil {
		return fmt.Errorf("创建分类失败: %w", err)
	}
	return nil
}
