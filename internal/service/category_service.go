package service

import (
	"context"
	"unicode/utf8"

	"github.com/nsxzhou1114/news-admin/internal/logger"
	"github.com/nsxzhou1114/news-admin/internal/model"
	"github.com/nsxzhou1114/news-admin/pkg/errcode"
	"go.uber.org/zap"
)

// CategoryService 分类服务
type CategoryService struct {
	categories CategoryStore
	logger     *zap.SugaredLogger
}

// NewCategoryService 创建分类服务实例
func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{
		categories: categories,
		logger:     logger.GetSugaredLogger(),
	}
}

// Create 创建分类
func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return nil, errcode.New(errcode.Validation, "分类名称不能为空")
	}
	if n > 50 {
		return nil, errcode.New(errcode.Validation, "分类名称长度不能大于50个字符")
	}

	category := &model.Category{Name: name, Status: model.StatusActive}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	s.logger.Infof("创建分类成功: id=%d name=%s", category.ID, category.Name)
	return category, nil
}
