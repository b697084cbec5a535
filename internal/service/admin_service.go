package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/nsxzhou1114/news-admin/internal/dto"
	"github.com/nsxzhou1114/news-admin/internal/logger"
	"github.com/nsxzhou1114/news-admin/internal/model"
	"github.com/nsxzhou1114/news-admin/pkg/auth"
	"github.com/nsxzhou1114/news-admin/pkg/errcode"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminService 管理员服务
type AdminService struct {
	admins AdminStore
	tokens *auth.TokenManager
	now    Clock
	logger *zap.SugaredLogger
}

// NewAdminService 创建管理员服务实例
func NewAdminService(admins AdminStore, tokens *auth.TokenManager) *AdminService {
	return &AdminService{
		admins: admins,
		tokens: tokens,
		now:    time.Now,
		logger: logger.GetSugaredLogger(),
	}
}

func errBadCredentials() error {
	return errcode.New(errcode.Unauthorized, "用户名或密码错误")
}

// Login 管理员登录
func (s *AdminService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	admin, err := s.admins.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.Status != model.StatusActive {
		return nil, errBadCredentials()
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, errBadCredentials()
	}

	token, err := s.tokens.Generate(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	if err := s.admins.UpdateLastLogin(ctx, admin.ID, s.now()); err != nil {
		s.logger.Warnf("更新管理员登录时间失败: %v", err)
	}

	return &dto.AdminLoginResponse{
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
		AdminID:     admin.ID,
		Username:    admin.Username,
	}, nil
}

// Logout 管理员登出，令牌在过期前不再可用
func (s *AdminService) Logout(claims *auth.Claims) {
	s.tokens.Revoke(claims)
}

// Create 创建管理员账号
func (s *AdminService) Create(ctx context.Context, username, password string) (*model.Admin, error) {
	if n := utf8.RuneCountInString(username); n == 0 || n > 50 {
		return nil, errcode.New(errcode.Validation, "管理员账号长度必须在1-50个字符之间")
	}
	if len(password) < 6 || len(password) > 72 {
		return nil, errcode.New(errcode.Validation, "密码长度必须在6-72个字符之间")
	}

	existing, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errcode.New(errcode.Validation, "管理员账号已存在")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	admin := &model.Admin{
		Username: username,
		Password: string(hash),
		Status:   model.StatusActive,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	s.logger.Infof("创建管理员成功: id=%d username=%s", admin.ID, admin.Username)
	return admin, nil
}
