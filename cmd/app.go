package cmd

import (
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/nsxzhou1114/news-admin/internal/config"
	"github.com/nsxzhou1114/news-admin/internal/database"
	"github.com/nsxzhou1114/news-admin/internal/logger"
	"github.com/nsxzhou1114/news-admin/internal/metrics"
	"github.com/nsxzhou1114/news-admin/internal/repository"
	"github.com/nsxzhou1114/news-admin/internal/service"
	"github.com/nsxzhou1114/news-admin/pkg/auth"
	"gorm.io/gorm"
)

// app 进程内共享的依赖
type app struct {
	cfg        *config.Config
	db         *gorm.DB
	es         *elasticsearch.Client
	tokens     *auth.TokenManager
	metrics    *metrics.Metrics
	articles   *service.ArticleService
	admins     *service.AdminService
	categories *service.CategoryService
}

// initializeSystem 初始化配置与日志
func initializeSystem() (*config.Config, error) {
	if err := config.Init(configPath); err != nil {
		return nil, fmt.Errorf("配置初始化失败: %w", err)
	}
	if err := logger.Init(); err != nil {
		return nil, fmt.Errorf("日志初始化失败: %w", err)
	}
	return config.GetConfig(), nil
}

// newApp 连接存储并组装服务
func newApp(cfg *config.Config) (*app, error) {
	db, err := database.InitMySQL(&cfg.MySQL)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg: cfg,
		db:  db,
		tokens: auth.NewTokenManager(
			cfg.JWT.SecretKey,
			cfg.JWT.Issuer,
			time.Duration(cfg.JWT.AccessExpireSeconds)*time.Second,
		),
	}
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New()
	}

	var bodies service.ArticleBodyStore = repository.NewArticleDataRepository(db)
	if cfg.Article.BodyStore == config.BodyStoreElasticsearch {
		a.es, err = database.InitElasticsearch(&cfg.Elasticsearch, cfg.MySQL.ConnectRetries)
		if err != nil {
			return nil, err
		}
		bodies = repository.NewESArticleDataRepository(a.es, cfg.Elasticsearch.BodyIndex)
	}

	filter, err := service.NewContentFilter(cfg.Article)
	if err != nil {
		return nil, err
	}

	adminRepo := repository.NewAdminRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	a.articles = service.NewArticleService(service.ArticleDeps{
		Articles:        repository.NewArticleRepository(db),
		Bodies:          bodies,
		Categories:      categoryRepo,
		Admins:          adminRepo,
		Tx:              repository.NewTransactor(db),
		Filter:          filter,
		Metrics:         a.metrics,
		Logger:          logger.GetSugaredLogger(),
		DefaultPageSize: cfg.Article.DefaultPageSize,
	})
	a.admins = service.NewAdminService(adminRepo, a.tokens)
	a.categories = service.NewCategoryService(categoryRepo)
	return a, nil
}

// close 释放数据库连接
func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
