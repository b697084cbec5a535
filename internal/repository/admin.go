package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nsxzhou1114/news-admin/internal/model"
	"gorm.io/gorm"
)

// AdminRepository 管理员仓储
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员仓储
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// FindByUsername 按账号精确查询管理员，不存在时返回 nil
func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := conn(ctx, r.db).Where("username = ?", username).Take(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询管理员失败: %w", err)
	}
	return &admin, nil
}

// Create 创建管理员
func (r *AdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	if admin.Status == 0 {
		admin.Status = model.StatusActive
	}
	if err := conn(ctx, r.db).Create(admin).Error; err != nil {
		return fmt.Errorf("创建管理员失败: %w", err)
	}
	return nil
}

// UpdateLastLogin 记录最后登录时间
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	if err := conn(ctx, r.db).Model(&model.Admin{}).Where("id = ?", id).
		Update("last_login_at", at).Error; err != nil {
		return fmt.Errorf("更新登录时间失败: %w", err)
	}
	return nil
}
